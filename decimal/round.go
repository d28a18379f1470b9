package decimal

// Round returns w rounded half up to at most scale fractional digits. A
// negative scale rounds to tens, hundreds and so on. Special values are
// returned unchanged.
func (w Wide) Round(scale int) Wide {
	significand, rank := unpack(w)
	if rank == 0 {
		return w
	}

	target := scale + Bias
	if rank <= target {
		return fitToTarget(significand, rank, clampRank(target))
	}

	digits := rank - target
	if digits > exactLongPowers {
		return pack(0, clampRank(target))
	}

	significand = div10(significand, longPowers[digits])
	if significand == 0 {
		return pack(0, clampRank(target))
	}

	return reduceAndFit(significand, target, clampRank(target))
}

// ToScale moves w toward the given scale without losing precision. Unlike
// Round it never changes the value, so the result keeps a different scale
// when the requested one cannot represent w or the significand has no room
// for more digits.
func (w Wide) ToScale(scale int) Wide {
	significand, rank := unpack(w)
	if rank == 0 {
		return w
	}

	return fitToTarget(significand, rank, clampRank(scale+Bias))
}
