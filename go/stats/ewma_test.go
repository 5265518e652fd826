package stats

import (
	"math"
	"testing"
)

const epsilon = 1e-12

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon*math.Max(1, math.Abs(b))
}

func TestExpWeightedAvgEmpty(t *testing.T) {
	calls := 0
	next := func() (uint32, bool) {
		calls++
		return 0, false
	}
	if got := ExpWeightedAvg(next, 1.0/3); got != 0 {
		t.Errorf("got %v want 0", got)
	}
	if calls != 1 {
		t.Errorf("next called %d times, want 1", calls)
	}
	if got := ExpWeightedAvgSlice([]float64(nil), 0.9); got != 0 {
		t.Errorf("nil slice: got %v want 0", got)
	}
}

func TestExpWeightedAvgOneElement(t *testing.T) {
	for _, alpha := range []float64{0, 1.0 / 3, 1, -2, 7} {
		if got := ExpWeightedAvgSlice([]uint32{1}, alpha); got != 1 {
			t.Errorf("alpha %v: got %v want 1", alpha, got)
		}
		if got := ExpWeightedAvgSlice([]int8{-7}, alpha); got != -7 {
			t.Errorf("alpha %v: got %v want -7", alpha, got)
		}
	}
}

func TestExpWeightedAvgSequence(t *testing.T) {
	input := make([]uint32, 0, 10)
	for i := uint32(1); i <= 10; i++ {
		input = append(input, i)
	}
	want := []float64{
		1.0,
		4.0 / 3.0,
		17.0 / 9.0,
		70.0 / 27.0,
		275.0 / 81.0,
		1036.0 / 243.0,
		3773.0 / 729.0,
		13378.0 / 2187.0,
		46439.0 / 6561.0,
		158488.0 / 19683.0,
	}
	for n := 1; n <= len(input); n++ {
		got := ExpWeightedAvgSlice(input[:n], 1.0/3)
		if !approxEqual(got, want[n-1]) {
			t.Errorf("first %d samples: got %v want %v", n, got, want[n-1])
		}
	}
}

func TestExpWeightedAvgOrderSensitive(t *testing.T) {
	fwd := ExpWeightedAvgSlice([]int{1, 2, 3}, 1.0/3)
	rev := ExpWeightedAvgSlice([]int{3, 2, 1}, 1.0/3)
	if !approxEqual(fwd, 17.0/9) {
		t.Errorf("forward: got %v want %v", fwd, 17.0/9)
	}
	if !approxEqual(rev, 19.0/9) {
		t.Errorf("reverse: got %v want %v", rev, 19.0/9)
	}
}

func TestExpWeightedAvgAlphaUnchecked(t *testing.T) {
	// avg = 2*20 + (1-2)*10
	if got := ExpWeightedAvgSlice([]float32{10, 20}, 2); got != 30 {
		t.Errorf("got %v want 30", got)
	}
	if got := ExpWeightedAvgSlice([]float64{10, 20}, 0); got != 10 {
		t.Errorf("alpha 0: got %v want 10", got)
	}
	if got := ExpWeightedAvgSlice([]float64{10, 20}, 1); got != 20 {
		t.Errorf("alpha 1: got %v want 20", got)
	}
}

type millis int64

func TestExpWeightedAvgNamedType(t *testing.T) {
	if got := ExpWeightedAvgSlice([]millis{100, 200}, 0.5); got != 150 {
		t.Errorf("got %v want 150", got)
	}
}

func TestEWMARecordMatchesFold(t *testing.T) {
	samples := []float64{3, 8, -1, 4.5, 12, 0, 7}
	const alpha = 0.2

	var e EWMA
	if _, ok := e.Get(); ok {
		t.Fatal("zero EWMA reports a value")
	}
	for _, v := range samples {
		e.Record(v, alpha)
	}
	got, ok := e.Get()
	if !ok {
		t.Fatal("EWMA reports no value after recording")
	}
	if want := ExpWeightedAvgSlice(samples, alpha); got != want {
		t.Errorf("Record: got %v, fold: %v", got, want)
	}
}
