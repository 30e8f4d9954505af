package pcg

import (
	"encoding/binary"

	"github.com/pcgrand/pcgrand/gen32"
)

// Multiplier and permutation constants of the 32-bit-state generator. The
// multiplier is fixed per word width; step and Jump must agree on it exactly.
const (
	mult32 = 0xf13283ad
	mix32  = 277803737
)

const stateLen32 = 8

// PCG32 is a permuted congruential generator whose entire state is two 32-bit
// words: the working value and the stream increment. It emits 32 bits per
// step. All arithmetic is single-word, which keeps it fast on 32-bit cores.
//
// The increment is always odd (forced at seeding), giving the underlying
// congruential recurrence its full 2^32-step cycle. Distinct stream numbers
// select distinct non-overlapping sequences for the same seed.
//
// The zero value is unseeded and behaves as NewPCG32(0, 0) on first use.
type PCG32 struct {
	state uint32
	inc   uint32
}

var _ gen32.Source = (*PCG32)(nil)

// NewPCG32 returns a generator seeded with the given seed value and stream
// number. Seeding steps once from zero, adds the seed and steps again, so
// "boring" seeds such as (0, 0) do not produce degenerate early output; the
// expression below is that sandwich collapsed into one line.
func NewPCG32(seed, stream uint32) PCG32 {
	inc := stream<<1 | 1
	return PCG32{state: (inc+seed)*mult32 + inc, inc: inc}
}

// Seed reseeds the generator in place.
func (p *PCG32) Seed(seed, stream uint32) {
	*p = NewPCG32(seed, stream)
}

// Uint32 produces the next 32 raw bits of output.
//
// The top four state bits pick a shift in 4..19, the shifted state is
// multiplied into the state, and the result is folded once more for output.
// The stored state then advances from that permuted value, not from a
// pristine copy of the prior state, so the state sequence interleaves
// permutation and step. Jump therefore moves along the raw recurrence, not
// the output index; see Jump.
func (p *PCG32) Uint32() uint32 {
	if p.inc == 0 {
		*p = NewPCG32(0, 0)
	}
	s := p.state
	s ^= (s >> (4 + (s >> 28))) * mix32
	p.state = s*mult32 + p.inc
	return s ^ (s >> 22)
}

// Jump skips delta steps of the underlying recurrence in O(log delta)
// multiply-adds. The cycle wraps, so jumping forward by 2^32-k goes backward
// by k: negate a uint32 variable holding k.
//
// The skip applies to the raw congruential recurrence. Uint32 advances the
// state through the permuted value, so a backward Jump does not replay
// previously returned outputs; use disjoint forward offsets to carve
// non-overlapping streams, or PCG64 when outputs must be rewindable.
func (p *PCG32) Jump(delta uint32) {
	if p.inc == 0 {
		*p = NewPCG32(0, 0)
	}
	p.state = advanceLCG(p.state, delta, mult32, p.inc)
}

// State returns the generator's full state as two raw words, working value
// first. Reconstructing a generator from the pair resumes the identical
// output sequence.
func (p PCG32) State() [2]uint32 {
	return [2]uint32{p.state, p.inc}
}

// SetState restores a state previously obtained from State. No validation is
// performed; a pair with a zero increment yields the zero value, which
// reseeds itself on use.
func (p *PCG32) SetState(s [2]uint32) {
	p.state, p.inc = s[0], s[1]
}

// MarshalBinary encodes the state as 8 big-endian bytes, working value first.
func (p PCG32) MarshalBinary() ([]byte, error) {
	var b [stateLen32]byte
	binary.BigEndian.PutUint32(b[:4], p.state)
	binary.BigEndian.PutUint32(b[4:], p.inc)
	return b[:], nil
}

// UnmarshalBinary restores the state written by MarshalBinary.
func (p *PCG32) UnmarshalBinary(data []byte) error {
	if len(data) != stateLen32 {
		return ErrBadState.New("want %d bytes, got %d", stateLen32, len(data))
	}
	p.state = binary.BigEndian.Uint32(data[:4])
	p.inc = binary.BigEndian.Uint32(data[4:])
	return nil
}
