/*
Package pcg implements permuted congruential generators: compact statistical
PRNGs that advance a linear congruential state and mix every output through a
bit permutation.

Two family members are provided. They are named by the width of the state they
carry; both emit 32-bit words per step:

- PCG32 keeps the entire generator in two 32-bit words, so every operation
stays in single-word arithmetic. That is the right trade for 32-bit cores and
for code that embeds many generators.

- PCG64 carries 64-bit state and increment (the classic member of the family)
and mixes output with the xorshift-high/random-rotation permutation. Its
output is a pure function of the state before the step, so Jump moves the
output sequence itself: jumping back replays earlier outputs exactly.

Generators are plain values with no hidden resources. Copying a value forks
the sequence, which is the intended way to derive disjoint worker streams:
copy a seeded generator and Jump each copy by a distinct non-overlapping
offset. A zero-valued generator seeds itself as NewPCG32(0, 0) (respectively
NewPCG64(0, 0)) on first use.

None of the operations allocate, block, or touch the operating system, and
all arithmetic wraps modulo the word size, so sequences are bit-identical on
every platform.
*/
package pcg
