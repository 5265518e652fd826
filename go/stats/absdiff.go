package stats

// Ordered is the set of kinds with < and - operators.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// AbsDiff returns |a - b|. The larger operand is always the minuend, so
// unsigned inputs never wrap.
//
// Floats are only partially ordered: if either value is NaN, the result is
// b - a (also NaN).
func AbsDiff[T Ordered](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
