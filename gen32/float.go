package gen32

import (
	"math"
)

// Floats are built from bits instead of dividing: the mantissa is filled with
// a draw's high bits under the fixed exponent of the [1, 2) binade, and one
// selector bit folds the result onto the unit interval as either f-1 or 2-f.
// Both folds are exact, and together they cover every dyadic step of the
// closed interval: 0 and 1 are genuine, rare outcomes (2^-24 each for
// float32, 2^-53 for float64), not rounding artifacts.
//
// Bit budget of the feeding draw, high to low: mantissa, fold selector, sign
// (signed variants only).
const (
	f32One  = 0x3f800000 // exponent bits of float32(1.0)
	f32Fold = 1 << 8
	f32Sign = 1 << 7

	f64One  = 0x3ff0000000000000 // exponent bits of float64(1.0)
	f64Fold = 1 << 11
	f64Sign = 1 << 10
)

// UnitFloat32 returns a float32 in [0, 1], both endpoints included, from one
// raw word.
func (g Gen) UnitFloat32() float32 {
	w := g.S.Uint32()
	f := math.Float32frombits(f32One | w>>9)
	if w&f32Fold != 0 {
		return 2 - f
	}
	return f - 1
}

// SignedFloat32 returns a float32 in [-1, 1], both endpoints included, from
// one raw word: the unit construction plus one bit for the sign.
func (g Gen) SignedFloat32() float32 {
	w := g.S.Uint32()
	f := math.Float32frombits(f32One | w>>9)
	if w&f32Fold != 0 {
		f = 2 - f
	} else {
		f = f - 1
	}
	if w&f32Sign != 0 {
		return -f
	}
	return f
}

// UnitFloat64 returns a float64 in [0, 1], both endpoints included, from two
// raw words (one Uint64 draw).
func (g Gen) UnitFloat64() float64 {
	w := g.Uint64()
	f := math.Float64frombits(f64One | w>>12)
	if w&f64Fold != 0 {
		return 2 - f
	}
	return f - 1
}

// SignedFloat64 returns a float64 in [-1, 1], both endpoints included, from
// two raw words.
func (g Gen) SignedFloat64() float64 {
	w := g.Uint64()
	f := math.Float64frombits(f64One | w>>12)
	if w&f64Fold != 0 {
		f = 2 - f
	} else {
		f = f - 1
	}
	if w&f64Sign != 0 {
		return -f
	}
	return f
}
