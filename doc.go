/*
Package pcgrand - deterministic, allocation-free random number engine of the
PCG family.

https://www.pcg-random.org/

PCG generators combine a linear congruential step with an output-mixing
permutation: the cheap recurrence provides the period, the permutation
repairs its statistical weaknesses. The result is a small, fast generator
whose entire state is two machine words.

This engine was built for resource-constrained targets: no heap, no operating
system services, single ownership. Every operation is a pure computation over
a value the caller holds, all integer arithmetic wraps modulo the word size,
and sequences are bit-identical on every platform for the same seed and call
order.

Capabilities

- two generators: PCG32 (whole generator in two 32-bit words, single-word
arithmetic throughout) and PCG64 (classic 64-bit-state member),

- one derived-operations layer shared by any generator: booleans, narrow and
wide integers, unbiased bounded draws, unit-interval floats built from bits,
byte filling, picking and shuffling,

- jump-ahead: skip any number of steps in O(log n), which also carves
disjoint streams for parallel workers,

- exact state save/restore as two raw words, plus the standard binary
marshaling interfaces,

- math/rand/v2 interoperability: a wrapped generator is a rand/v2 Source.

Limitations

- statistical quality only: outputs are predictable from two observed words,
so this must never be used where an attacker profits from prediction,

- generator values are single-owner; nothing is synchronized. Give each
goroutine its own copy, jumped to a disjoint offset,

- index space for picking and shuffling is capped at 32 bits; longer slices
are handled but their tail is never chosen,

- bounded draws over an empty range panic: that is a defect in the caller,
not a runtime error to handle.

Structure

- root package is empty

- derived operations are in the gen32 subpackage

- concrete generators are in the pcg subpackage

Usage

Seed a concrete generator, then either call it directly for raw words or
wrap it for the derived surface:

  rng := pcg.NewPCG32(seed, stream)
  g := gen32.Gen{&rng}
  n := g.Uint32n(52)

gen32.Gen requires only the one-method gen32.Source interface, so custom
generators plug into the same derived layer. Slice helpers are package-level
generic functions (gen32.Pick, gen32.PickPtr, gen32.Shuffle) and take the
generator directly.

Generators are plain values. Copy one and Jump the copy to derive an
independent worker stream; save State() and restore it later to resume a
sequence exactly where it left off.
*/
package pcgrand
