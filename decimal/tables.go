package decimal

import (
	"math"
	"strconv"
)

const (
	exactLongPowers   = 18 // max power of 10 that fits into int64
	exactDoublePowers = 22 // max power of 10 that fits into float64 exactly

	maxDoubleSignificand = 1<<53 - 1
	maxDoubleValue       = 1 << 51

	// MaxValue and MinValue rounded to doubles.
	maxFiniteDouble = 3.6028797018963967e143
	minFiniteDouble = -3.6028797018963968e143

	// A rank above this can only hold values that round to zero.
	maxReducibleRank = 255 + exactLongPowers

	maxExponent = 1000

	// Formatting thresholds, see appendFractionalOrScientific.
	maxLeadingZeros  = 6
	maxTrailingZeros = 6
	exponentChar     = 'E'
)

var longPowers = func() (p [exactLongPowers + 1]int64) {
	p[0] = 1
	for i := 1; i < len(p); i++ {
		p[i] = p[i-1] * 10
	}

	return p
}()

// scientificModulo rejects integers with more than maxTrailingZeros trailing
// zeros from the integer fast path.
var scientificModulo = longPowers[maxTrailingZeros+1]

// multipliers and divisors are indexed by rank:
//
//	[rank]        [0]        [1]     ...  [127]   [128]   [129]  ...  [255]
//	multipliers   +Inf       1e127        1e1     1e0     1e-1        1e-127
//	divisors      0          1e-127       1e-1    1e0     1e1         1e127
var multipliers, divisors = func() (m, d [256]float64) {
	m[0] = math.Inf(1)
	d[0] = 0

	for rank := 1; rank < 256; rank++ {
		m[rank] = pow10Float(Bias - rank)
		d[rank] = pow10Float(rank - Bias)
	}

	return m, d
}()

// maxDoubles[rank] is the largest magnitude that FromFloat encodes at rank.
var maxDoubles = func() (t [256]float64) {
	for rank := range t {
		t[rank] = maxDoubleValue * multipliers[rank]
	}

	return t
}()

// zeros pads fractions and integers. It reads as "0." followed by zeros.
const zeros = "0.000000000000000000"

var nonFiniteDoubles = [4]float64{math.NaN(), math.Inf(1), math.NaN(), math.Inf(-1)}

var nonFiniteStrings = [4]string{NaNString, PositiveInfinityString, NaNString, NegativeInfinityString}

// nonFiniteIndex maps the sign of a sentinel significand onto the
// nonFinite tables: 0 -> 0, +1 -> 1, -1 -> 3.
func nonFiniteIndex(significand int64) int {
	switch {
	case significand > 0:
		return 1
	case significand < 0:
		return 3
	}

	return 0
}

// pow10Float returns the float64 closest to 10^exp.
func pow10Float(exp int) float64 {
	f, _ := strconv.ParseFloat("1e"+strconv.Itoa(exp), 64)

	return f
}
