package gen32

import (
	"encoding/binary"
)

// Gen wraps a Source with the derived operation set. It is a one-word value;
// construct it in place:
//
//	rng := pcg.NewPCG32(seed, stream)
//	g := gen32.Gen{&rng}
//
// All methods have value receivers and mutate the generator through the
// wrapped pointer.
type Gen struct {
	S Source
}

// Bool spends one raw word and reports whether it is negative as a signed
// integer, i.e. returns the top bit.
func (g Gen) Bool() bool {
	return int32(g.S.Uint32()) < 0
}

// Uint8 returns the high 8 bits of one raw word. The low bits of a
// congruential output are statistically weaker, so narrow draws keep the
// high end.
func (g Gen) Uint8() uint8 {
	return uint8(g.S.Uint32() >> 24)
}

// Uint16 returns the high 16 bits of one raw word.
func (g Gen) Uint16() uint16 {
	return uint16(g.S.Uint32() >> 16)
}

// Uint32 draws one raw word.
func (g Gen) Uint32() uint32 {
	return g.S.Uint32()
}

// Uint64 splices two draws; the first word is the low half, the second the
// high half.
func (g Gen) Uint64() uint64 {
	lo := g.S.Uint32()
	hi := g.S.Uint32()
	return uint64(hi)<<32 | uint64(lo)
}

// Uint32n returns a value uniform in [0, bound), free of modulo bias, by
// multiply-and-reject: the high word of the 64-bit product bound*draw is the
// candidate, and the low word decides rejection against the threshold
// 2^32 mod bound. Bounds near 2^32 reject at most about half the draws;
// small bounds almost never reject. The threshold division itself runs only
// when the low word makes rejection possible.
//
// Panics with ErrZeroBound when bound is zero.
func (g Gen) Uint32n(bound uint32) uint32 {
	if bound == 0 {
		panic(zeroBound("Uint32n"))
	}
	m := uint64(bound) * uint64(g.S.Uint32())
	if frac := uint32(m); frac < bound {
		thresh := -bound % bound
		for frac < thresh {
			m = uint64(bound) * uint64(g.S.Uint32())
			frac = uint32(m)
		}
	}
	return uint32(m >> 32)
}

// Read fills p with random bytes, four per raw word, low byte of each word
// first. It always fills the whole slice and returns len(p) with a nil
// error, satisfying io.Reader.
func (g Gen) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) >= 4 {
		binary.LittleEndian.PutUint32(p, g.S.Uint32())
		p = p[4:]
	}
	if len(p) > 0 {
		w := g.S.Uint32()
		for i := range p {
			p[i] = byte(w)
			w >>= 8
		}
	}
	return n, nil
}
