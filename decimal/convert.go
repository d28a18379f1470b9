package decimal

import (
	"math"
	"strconv"
)

// Float64 returns the float64 nearest to w.
func (w Wide) Float64() float64 {
	significand, rank := unpack(w)

	// When both the significand and the power of ten are exact doubles a
	// single multiply or divide is correctly rounded.
	if significand <= maxDoubleSignificand && -significand <= maxDoubleSignificand {
		if rank > Bias {
			if rank <= Bias+exactDoublePowers {
				return float64(significand) / divisors[rank]
			}
		} else {
			if rank >= Bias-exactDoublePowers {
				return float64(significand) * multipliers[rank]
			}

			if rank == 0 {
				return nonFiniteDoubles[nonFiniteIndex(significand)]
			}
		}
	}

	// Extended precision would be needed; the text form of w parses with
	// correct rounding.
	f, _ := strconv.ParseFloat(w.String(), 64)

	return f
}

// Int64 returns w rounded half up to an integer. Values beyond the int64
// range saturate to math.MaxInt64 or math.MinInt64, and NaN returns 0.
func (w Wide) Int64() int64 {
	significand, rank := unpack(w)

	switch {
	case rank == 0:
		return saturate(significand)
	case rank == Bias:
		return significand
	case rank > Bias:
		if rank-Bias <= exactLongPowers {
			return div10(significand, longPowers[rank-Bias])
		}

		// The magnitude is below 0.004.
		return 0
	}

	if Bias-rank <= exactLongPowers {
		pow10 := longPowers[Bias-rank]

		v := significand * pow10
		if v/pow10 == significand {
			return v
		}
	}

	return saturate(significand)
}

func saturate(significand int64) int64 {
	switch {
	case significand > 0:
		return math.MaxInt64
	case significand < 0:
		return math.MinInt64
	}

	return 0
}
