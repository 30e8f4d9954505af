package gen32

// Bounded is a prepared bounded sampler: the rejection threshold for a fixed
// bound is computed once at construction instead of on every draw. Use it
// when one bound is sampled in a tight loop; for one-off draws Gen.Uint32n
// is equivalent, value for value and draw for draw.
type Bounded struct {
	bound  uint32
	thresh uint32
}

// NewBounded prepares a sampler for [0, bound).
//
// Panics with ErrZeroBound when bound is zero.
func NewBounded(bound uint32) Bounded {
	if bound == 0 {
		panic(zeroBound("NewBounded"))
	}
	return Bounded{bound: bound, thresh: -bound % bound}
}

// Bound returns the configured bound.
func (b Bounded) Bound() uint32 {
	return b.bound
}

// Sample draws from s and returns a value uniform in [0, bound).
//
// Panics with ErrZeroBound on the zero Bounded; construct with NewBounded.
func (b Bounded) Sample(s Source) uint32 {
	if b.bound == 0 {
		panic(zeroBound("Bounded.Sample"))
	}
	m := uint64(b.bound) * uint64(s.Uint32())
	for uint32(m) < b.thresh {
		m = uint64(b.bound) * uint64(s.Uint32())
	}
	return uint32(m >> 32)
}
