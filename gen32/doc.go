/*
Package gen32 derives the full random-value surface from any generator that
can produce raw 32-bit words.

A concrete generator only implements Source (one method, Uint32). Wrapping it
in Gen, or passing it to the package-level slice functions, provides booleans,
narrower and wider integers, unbiased bounded draws, unit-interval floats,
byte filling, picking and shuffling - all defined purely in terms of raw
words, with no knowledge of the generator's internals. Any number of
generator implementations share this one derived layer.

Every operation is deterministic in the words it consumes and allocation-free,
so a recorded word sequence fully determines every derived result. The only
failure mode is the zero-bound contract violation (see ErrZeroBound), which
panics: requesting a draw from an empty range is a defect in the calling
code, not a runtime condition.
*/
package gen32
