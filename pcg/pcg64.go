package pcg

import (
	"encoding/binary"
	"math/bits"

	"github.com/pcgrand/pcgrand/gen32"
)

// mult64 is the congruential multiplier shared by the 64-bit-state members of
// the family.
const mult64 = 6364136223846793005

const stateLen64 = 16

// PCG64 is the classic member of the family: 64 bits of state and increment,
// 32 bits of output per step, with the xorshift-high/random-rotation output
// permutation. The permutation reads the pre-step state and the stored state
// walks the pure congruential orbit, so Jump moves the output sequence
// itself: jumping back k steps replays the last k outputs exactly.
//
// The zero value is unseeded and behaves as NewPCG64(0, 0) on first use.
type PCG64 struct {
	state uint64
	inc   uint64
}

var _ gen32.Source = (*PCG64)(nil)

// NewPCG64 returns a generator seeded with the given seed value and stream
// number, using the same step/add-seed/step sandwich as NewPCG32.
func NewPCG64(seed, stream uint64) PCG64 {
	inc := stream<<1 | 1
	return PCG64{state: (inc+seed)*mult64 + inc, inc: inc}
}

// Seed reseeds the generator in place.
func (p *PCG64) Seed(seed, stream uint64) {
	*p = NewPCG64(seed, stream)
}

// Uint32 produces the next 32 raw bits of output: the pre-step state is
// xorshift-folded down to one word and rotated by the top five state bits.
func (p *PCG64) Uint32() uint32 {
	if p.inc == 0 {
		*p = NewPCG64(0, 0)
	}
	s := p.state
	p.state = s*mult64 + p.inc
	x := uint32(((s >> 18) ^ s) >> 27)
	return bits.RotateLeft32(x, -int(s>>59))
}

// Jump skips delta steps in O(log delta) multiply-adds. The cycle wraps:
// jumping forward by 2^64-k goes backward by k (negate a uint64 variable
// holding k), and the next k outputs repeat the k outputs just produced.
func (p *PCG64) Jump(delta uint64) {
	if p.inc == 0 {
		*p = NewPCG64(0, 0)
	}
	p.state = advanceLCG(p.state, delta, mult64, p.inc)
}

// State returns the generator's full state as two raw words, working value
// first.
func (p PCG64) State() [2]uint64 {
	return [2]uint64{p.state, p.inc}
}

// SetState restores a state previously obtained from State, without
// validation.
func (p *PCG64) SetState(s [2]uint64) {
	p.state, p.inc = s[0], s[1]
}

// MarshalBinary encodes the state as 16 big-endian bytes, working value
// first.
func (p PCG64) MarshalBinary() ([]byte, error) {
	var b [stateLen64]byte
	binary.BigEndian.PutUint64(b[:8], p.state)
	binary.BigEndian.PutUint64(b[8:], p.inc)
	return b[:], nil
}

// UnmarshalBinary restores the state written by MarshalBinary.
func (p *PCG64) UnmarshalBinary(data []byte) error {
	if len(data) != stateLen64 {
		return ErrBadState.New("want %d bytes, got %d", stateLen64, len(data))
	}
	p.state = binary.BigEndian.Uint64(data[:8])
	p.inc = binary.BigEndian.Uint64(data[8:])
	return nil
}
