// Package connid generates the receive/send identifier pairs that label the
// two ends of a connection.
package connid

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// Pair is a receive/send identifier pair. Send is always Recv+1.
type Pair struct {
	Recv uint16
	Send uint16
}

func (p Pair) String() string { return fmt.Sprintf("%d/%d", p.Recv, p.Send) }

// PairFrom builds the pair seeded by id. When id is the largest uint16 the
// pair is shifted down by one so that Send does not wrap.
func PairFrom(id uint16) Pair {
	if id == math.MaxUint16 {
		return Pair{Recv: id - 1, Send: id}
	}
	return Pair{Recv: id, Send: id + 1}
}

// GenerateSequential draws a uniformly random pair from rng.
// rng must not be used concurrently.
func GenerateSequential(rng *rand.Rand) Pair {
	return PairFrom(uint16(rng.Uint32()))
}

// Generate is like GenerateSequential but uses the shared top-level source,
// which is safe for concurrent use.
func Generate() Pair {
	return PairFrom(uint16(rand.Uint32()))
}
