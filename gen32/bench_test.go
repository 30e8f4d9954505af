package gen32_test

import (
	"testing"

	"github.com/pcgrand/pcgrand/gen32"
	"github.com/pcgrand/pcgrand/pcg"
)

var (
	sinkU32 uint32
	sinkF64 float64
)

func BenchmarkUint32n(b *testing.B) {
	rng := pcg.NewPCG32(1, 1)
	g := gen32.Gen{&rng}
	for i := 0; i < b.N; i++ {
		sinkU32 += g.Uint32n(60)
	}
}

func BenchmarkBoundedSample(b *testing.B) {
	rng := pcg.NewPCG32(1, 1)
	sampler := gen32.NewBounded(60)
	for i := 0; i < b.N; i++ {
		sinkU32 += sampler.Sample(&rng)
	}
}

func BenchmarkUnitFloat64(b *testing.B) {
	rng := pcg.NewPCG32(1, 1)
	g := gen32.Gen{&rng}
	for i := 0; i < b.N; i++ {
		sinkF64 += g.UnitFloat64()
	}
}

func BenchmarkShuffle64(b *testing.B) {
	rng := pcg.NewPCG32(1, 1)
	buf := make([]int, 64)
	for i := range buf {
		buf[i] = i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gen32.Shuffle(&rng, buf)
	}
}

func BenchmarkCoinToss(b *testing.B) {
	rng := pcg.NewPCG32(1, 1)
	c := gen32.Coin{S: &rng}
	for i := 0; i < b.N; i++ {
		if c.Toss() {
			sinkU32++
		}
	}
}
