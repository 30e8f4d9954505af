package pcg

// advanceLCG skips delta steps of the affine recurrence
//
//	state' = state*mult + plus
//
// in O(log delta) multiply-adds instead of delta sequential steps. It squares
// the recurrence: (cur, plus) describes the effect of 2^i steps, and whenever
// bit i of delta is set that effect is folded into the accumulator pair.
// Passing delta = 2^width - k goes backward by k, since the cycle wraps.
//
// The routine depends only on the word width and multiplier of the LCG, not
// on any output permutation, so one instantiation per width serves every
// generator in the family.
func advanceLCG[T ~uint32 | ~uint64](state, delta, mult, plus T) T {
	accMult := T(1)
	var accPlus T
	for delta != 0 {
		if delta&1 != 0 {
			accMult *= mult
			accPlus = accPlus*mult + plus
		}
		plus *= mult + 1
		mult *= mult
		delta /= 2
	}
	return accMult*state + accPlus
}
