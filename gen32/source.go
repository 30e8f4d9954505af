package gen32

import (
	"math/rand/v2"
)

// Source is the single primitive a concrete generator must provide: produce
// the next 32 raw bits of output, advancing the generator. Implementations
// mutate through a pointer receiver, so a *pcg.PCG32 (or any other
// generator) is handed to Gen and the package functions directly.
type Source interface {
	Uint32() uint32
}

// Gen also satisfies the standard library's math/rand/v2 Source, so
// rand.New(g) layers the stdlib surface on top of any wrapped generator.
var _ rand.Source = Gen{}
