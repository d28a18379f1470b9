package decimal

import "math"

// New returns significand * 10^-scale, preferring a scale of 0 when that is
// lossless. Values that do not fit are rounded; values beyond the range
// become infinities and values too small to represent become zero.
func New(significand int64, scale int) Wide {
	return compose(significand, scale, Bias)
}

// NewToScale is like New but keeps the given scale whenever the value can be
// represented with it.
func NewToScale(significand int64, scale int) Wide {
	return compose(significand, scale, clampRank(scale+Bias))
}

// FromInt returns v with a scale of 0 when it fits the significand.
func FromInt(v int64) Wide {
	return compose(v, 0, Bias)
}

// ZeroToScale returns zero with the given scale.
func ZeroToScale(scale int) Wide {
	return pack(0, clampRank(scale+Bias))
}

func compose(significand int64, scale, targetRank int) Wide {
	// Check exceedingly large scales before they overflow the rank.
	if scale > maxReducibleRank-Bias {
		return pack(0, targetRank)
	}

	rank := scale + Bias

	if rank > 0 && rank <= 255 &&
		significand >= MinSignificand && significand <= MaxSignificand {

		return fitToTarget(significand, rank, targetRank)
	}

	return reduceAndFit(significand, rank, targetRank)
}

// FromFloat returns the decimal nearest to f with a significand below 2^51,
// preferring a scale of 0. Integral values up to 2^53 are exact. Values too
// large for that use the full significand, and only doubles beyond MaxValue
// or MinValue become infinities.
func FromFloat(f float64) Wide {
	return composeFloat(f, Bias)
}

// FromFloatToScale is like FromFloat but moves the result toward the given
// scale when that is lossless.
func FromFloatToScale(f float64, scale int) Wide {
	return composeFloat(f, clampRank(scale+Bias))
}

func composeFloat(f float64, targetRank int) Wide {
	switch {
	case math.IsNaN(f):
		return NaN
	case math.IsInf(f, 1):
		return PositiveInfinity
	case math.IsInf(f, -1):
		return NegativeInfinity
	}

	magnitude := math.Abs(f)

	// Integers are exact and need no scaling.
	if magnitude <= maxDoubleSignificand && f == math.Trunc(f) {
		return fitToTarget(int64(f), Bias, targetRank)
	}

	rank := findRank(magnitude)
	if rank == 0 {
		switch {
		case f > maxFiniteDouble:
			return PositiveInfinity
		case f < minFiniteDouble:
			return NegativeInfinity
		}

		// Above the 51 bit thresholds rank 1 still holds the full
		// significand range.
		rank = 1
	}

	// Half up, matching div10.
	significand := math.Floor(f*divisors[rank] + 0.5)

	var s int64

	switch {
	case significand >= -MinSignificand:
		s = MaxSignificand
	case significand <= MinSignificand:
		s = MinSignificand
	default:
		s = int64(significand)
	}

	return fitToTarget(s, rank, targetRank)
}

// findRank returns the largest rank r such that f <= maxDoubles[r]. It is an
// eight step binary search over the thresholds.
func findRank(f float64) int {
	rank := 128
	if f > maxDoubles[128] {
		rank = 0
	}

	for _, step := range [...]int{64, 32, 16, 8, 4, 2, 1} {
		if f <= maxDoubles[rank+step] {
			rank += step
		}
	}

	return rank
}
