package decimal

// fitToTarget moves (significand, rank) toward targetRank without losing
// precision. Both inputs must already be in the packable range. The result
// may keep a different rank when no lossless step is available.
func fitToTarget(significand int64, rank, targetRank int) Wide {
	if significand == 0 {
		return pack(0, targetRank)
	}

	for rank > targetRank && significand%10 == 0 {
		significand /= 10
		rank--
	}

	for rank < targetRank &&
		significand >= MinSignificand/10 &&
		significand <= MaxSignificand/10 {

		significand *= 10
		rank++
	}

	return pack(significand, rank)
}

// reduceAndFit brings an arbitrary (significand, rank) pair into the
// packable range, rounding when digits have to be dropped, and then moves it
// toward targetRank.
func reduceAndFit(significand int64, rank, targetRank int) Wide {
	if rank <= 0 {
		// Trade scale for significand digits while that stays exact.
		for rank <= 0 &&
			significand != 0 &&
			significand >= MinSignificand/10 &&
			significand <= MaxSignificand/10 {

			significand *= 10
			rank++
		}

		if rank <= 0 {
			return nonFinite(significand)
		}
	}

	if rank > maxReducibleRank {
		return pack(0, targetRank)
	}

	reduction := reductionDigits(significand)
	if rank <= reduction {
		return nonFinite(significand)
	}

	if rank-255 > reduction {
		reduction = rank - 255
	}

	if reduction > 0 {
		significand = div10(significand, longPowers[reduction])
		rank -= reduction
	}

	return fitToTarget(significand, rank, targetRank)
}

// reductionDigits returns how many trailing digits have to be rounded away
// so the significand fits the packable range.
func reductionDigits(significand int64) int {
	switch {
	case significand > MaxSignificand:
		switch {
		case significand < MaxSignificand*10+5:
			return 1
		case significand < MaxSignificand*100+50:
			return 2
		}

		return 3
	case significand < MinSignificand:
		switch {
		case significand >= MinSignificand*10-5:
			return 1
		case significand >= MinSignificand*100-50:
			return 2
		}

		return 3
	}

	return 0
}

// div10 returns floor(significand/pow10 + 1/2). pow10 must be an even power
// of ten. Dividing by half the divisor first keeps the rounding step from
// overflowing near the int64 limits.
func div10(significand, pow10 int64) int64 {
	half := pow10 >> 1

	q := significand / half
	if significand%half != 0 && significand < 0 {
		q--
	}

	return (q + 1) >> 1
}
