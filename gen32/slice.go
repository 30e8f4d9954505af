package gen32

import (
	"math"
)

// Slice operations live at package level: methods cannot take type
// parameters. They accept the Source directly, so concrete generators are
// passed without wrapping.

// Pick returns a uniformly chosen element of buf, by value.
//
// Panics with ErrZeroBound when buf is empty.
func Pick[T any](s Source, buf []T) T {
	return buf[index(s, len(buf), "Pick")]
}

// PickPtr returns a pointer to a uniformly chosen element of buf, for
// callers that read or rewrite the chosen slot in place.
//
// Panics with ErrZeroBound when buf is empty.
func PickPtr[T any](s Source, buf []T) *T {
	return &buf[index(s, len(buf), "PickPtr")]
}

func index(s Source, n int, op string) int {
	if n == 0 {
		panic(zeroBound(op))
	}
	return int(Gen{s}.Uint32n(clampLen(n)))
}

// Shuffle permutes buf in place, uniformly over all permutations, walking
// forward: at position i it draws an offset below the count of elements not
// yet placed and swaps i with i+offset. The forward walk touches memory
// sequentially; the distribution is the same as the textbook
// backward-walking Fisher-Yates.
//
// A single element is left alone without drawing. Panics with ErrZeroBound
// when buf is empty. Elements beyond the first 2^32-1 stay in place: the
// index space is capped at 32 bits.
func Shuffle[T any](s Source, buf []T) {
	if len(buf) == 0 {
		panic(zeroBound("Shuffle"))
	}
	g := Gen{s}
	remaining := clampLen(len(buf))
	for i := 0; i+1 < len(buf) && remaining > 1; i++ {
		j := i + int(g.Uint32n(remaining))
		buf[i], buf[j] = buf[j], buf[i]
		remaining--
	}
}

// clampLen saturates a length to the 32-bit index space. On 32-bit platforms
// every length passes through unchanged; wider platforms cap at 2^32-1.
func clampLen(n int) uint32 {
	if uint64(n) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(n)
}
