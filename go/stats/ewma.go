package stats

// Number is the set of numeric kinds that convert to float64.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

type EWMA struct {
	v  float64
	ok bool
}

func (e EWMA) Get() (float64, bool) { return e.v, e.ok }

// Record sets EWMA = alpha * v + (1-alpha) * EWMA.
// The first recorded value is taken as-is.
func (e *EWMA) Record(v, alpha float64) {
	if !e.ok {
		e.ok = true
		e.v = v
		return
	}
	e.v = alpha*v + (1-alpha)*e.v
}

// ExpWeightedAvg folds the samples produced by next, in order, into an
// exponentially weighted moving average. next reports false once the
// sequence is exhausted.
//
// An empty sequence yields 0 and a single sample is returned unchanged.
// alpha is not range checked.
func ExpWeightedAvg[T Number](next func() (T, bool), alpha float64) float64 {
	var e EWMA
	for {
		v, ok := next()
		if !ok {
			break
		}
		e.Record(float64(v), alpha)
	}
	avg, _ := e.Get()
	return avg
}

// ExpWeightedAvgSlice is ExpWeightedAvg over a slice.
func ExpWeightedAvgSlice[T Number](samples []T, alpha float64) float64 {
	return ExpWeightedAvg(SliceIter(samples), alpha)
}

// SliceIter returns a pull iterator over s.
func SliceIter[T any](s []T) func() (T, bool) {
	i := 0
	return func() (T, bool) {
		if i >= len(s) {
			var zero T
			return zero, false
		}
		v := s[i]
		i++
		return v, true
	}
}
