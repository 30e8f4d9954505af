package pcg_test

import (
	"testing"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcgrand/pcgrand/pcg"
)

func draw32(p *pcg.PCG32, n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = p.Uint32()
	}
	return out
}

func TestPCG32RegressionVector(t *testing.T) {
	p := pcg.NewPCG32(0, 0)
	assert.Equal(t, uint32(0xc49ffa8a), p.Uint32())
	assert.Equal(t, []uint32{
		0x360644ca, 0xc56ed8fc, 0xc9f310db, 0xc773d5d6,
		0xd82c6249, 0xb469c74e, 0x950a5574,
	}, draw32(&p, 7))
}

func TestPCG32KnownSequences(t *testing.T) {
	p := pcg.NewPCG32(12345, 0)
	assert.Equal(t, []uint32{0x4c6362c3, 0x88cd2249, 0xdbebfb0e}, draw32(&p, 3))

	p = pcg.NewPCG32(0xdeadbeef, 0xbeef)
	assert.Equal(t, []uint32{0x4fd4ab32, 0x49e2c8c8, 0xb9353ad6, 0x53a3c07e}, draw32(&p, 4))
}

func TestPCG32Determinism(t *testing.T) {
	a := pcg.NewPCG32(987654321, 17)
	b := pcg.NewPCG32(987654321, 17)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Uint32(), b.Uint32(), "draw %d", i)
	}

	// Distinct streams of the same seed must not track each other.
	c := pcg.NewPCG32(987654321, 18)
	d := pcg.NewPCG32(987654321, 17)
	assert.NotEqual(t, draw32(&d, 16), draw32(&c, 16))
}

func TestPCG32ZeroValue(t *testing.T) {
	var p pcg.PCG32
	q := pcg.NewPCG32(0, 0)
	assert.Equal(t, q.Uint32(), p.Uint32())
	assert.Equal(t, q.Uint32(), p.Uint32())

	// Restoring an all-zero pair yields the same behavior.
	var r pcg.PCG32
	r.SetState([2]uint32{0, 0})
	s := pcg.NewPCG32(0, 0)
	assert.Equal(t, s.Uint32(), r.Uint32())

	// Jump seeds an unseeded generator first, same as Uint32.
	var j pcg.PCG32
	j.Jump(1000)
	k := pcg.NewPCG32(0, 0)
	k.Jump(1000)
	assert.Equal(t, k.State(), j.State())
	assert.Equal(t, k.Uint32(), j.Uint32())
}

func TestPCG32Seed(t *testing.T) {
	p := pcg.NewPCG32(1, 1)
	p.Uint32()
	p.Seed(0xdeadbeef, 0xbeef)
	assert.Equal(t, []uint32{0x4fd4ab32, 0x49e2c8c8}, draw32(&p, 2))
}

func TestPCG32JumpAdditivity(t *testing.T) {
	base := pcg.NewPCG32(555, 3)
	base.Uint32()

	a := base
	a.Jump(1234)
	a.Jump(98765)
	b := base
	b.Jump(1234 + 98765)
	assert.Equal(t, b.State(), a.State())
	assert.Equal(t, b.Uint32(), a.Uint32())

	// Additivity holds modulo the cycle length, so wrapping sums work too.
	x, y := uint32(0xffff0000), uint32(0x00020000)
	a = base
	a.Jump(x)
	a.Jump(y)
	b = base
	b.Jump(x + y)
	assert.Equal(t, b.State(), a.State())
}

func TestPCG32JumpZero(t *testing.T) {
	p := pcg.NewPCG32(77, 0)
	p.Uint32()
	q := p
	q.Jump(0)
	assert.Equal(t, p.State(), q.State())
}

func TestPCG32JumpCycleWrap(t *testing.T) {
	p := pcg.NewPCG32(4321, 9)
	draw32(&p, 3)
	control := p

	k := uint32(7)
	p.Jump(-k) // backward k = forward 2^32-k
	p.Jump(k)
	assert.Equal(t, control.State(), p.State())
	assert.Equal(t, draw32(&control, 8), draw32(&p, 8))
}

func TestPCG32JumpThenDraw(t *testing.T) {
	p := pcg.NewPCG32(42, 7)
	assert.Equal(t, []uint32{0x9fe3fd25, 0x876120e2}, draw32(&p, 2))
	p.Jump(1000)
	assert.Equal(t, uint32(0x5cd3123c), p.Uint32())
}

func TestPCG32StateRoundTrip(t *testing.T) {
	p := pcg.NewPCG32(0xdeadbeef, 0xbeef)
	draw32(&p, 2)

	var q pcg.PCG32
	q.SetState(p.State())
	assert.Equal(t, []uint32{0xb9353ad6, 0x53a3c07e}, draw32(&q, 2))
	assert.Equal(t, []uint32{0xb9353ad6, 0x53a3c07e}, draw32(&p, 2))

	// After the parallel draws both must still agree.
	assert.Equal(t, p.State(), q.State())
}

func TestPCG32MarshalBinary(t *testing.T) {
	p := pcg.NewPCG32(31415, 926)
	draw32(&p, 5)

	blob, err := p.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, blob, 8)

	var q pcg.PCG32
	require.NoError(t, q.UnmarshalBinary(blob))
	assert.Equal(t, p.State(), q.State())
	assert.Equal(t, draw32(&p, 4), draw32(&q, 4))
}

func TestPCG32UnmarshalBadSize(t *testing.T) {
	var p pcg.PCG32
	err := p.UnmarshalBinary([]byte{1, 2, 3})
	require.Error(t, err)
	assert.True(t, errorx.IsOfType(err, pcg.ErrBadState))

	err = p.UnmarshalBinary(make([]byte, 16))
	require.Error(t, err)
	assert.True(t, errorx.IsOfType(err, pcg.ErrBadState))
}
