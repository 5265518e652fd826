package connid

import (
	"errors"
	"math"
	"sync"

	"github.com/RoaringBitmap/roaring"
	"golang.org/x/exp/rand"
)

// ErrExhausted is returned when no two adjacent ids are free.
var ErrExhausted = errors.New("connid: no free identifier pairs")

const maxAttempts = 64

// Allocator hands out random pairs whose ids are not held by any live pair.
// It is safe for concurrent use.
type Allocator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	inUse *roaring.Bitmap
	live  *roaring.Bitmap // Recv of every pair handed out by Next
}

func NewAllocator(rng *rand.Rand) *Allocator {
	return &Allocator{rng: rng, inUse: roaring.New(), live: roaring.New()}
}

// must hold a.mu
func (a *Allocator) free(p Pair) bool {
	return !a.inUse.Contains(uint32(p.Recv)) && !a.inUse.Contains(uint32(p.Send))
}

// Next returns a pair with both ids unused and marks them in use.
func (a *Allocator) Next() (Pair, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := 0; i < maxAttempts; i++ {
		p := GenerateSequential(a.rng)
		if a.free(p) {
			a.take(p)
			return p, nil
		}
	}

	// Random draws keep colliding; the id space is nearly full.
	start := uint32(a.rng.Uint64n(math.MaxUint16))
	for i := uint32(0); i < math.MaxUint16; i++ {
		p := PairFrom(uint16((start + i) % math.MaxUint16))
		if a.free(p) {
			a.take(p)
			return p, nil
		}
	}
	return Pair{}, ErrExhausted
}

// must hold a.mu
func (a *Allocator) take(p Pair) {
	a.inUse.Add(uint32(p.Recv))
	a.inUse.Add(uint32(p.Send))
	a.live.Add(uint32(p.Recv))
}

// Release frees both ids of p. Pairs that were not returned by Next, or
// were already released, are ignored.
func (a *Allocator) Release(p Pair) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if p.Send != p.Recv+1 || !a.live.CheckedRemove(uint32(p.Recv)) {
		return
	}
	a.inUse.Remove(uint32(p.Recv))
	a.inUse.Remove(uint32(p.Send))
}

func (a *Allocator) InUse(id uint16) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inUse.Contains(uint32(id))
}

// Len returns the number of ids currently in use.
func (a *Allocator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return int(a.inUse.GetCardinality())
}
