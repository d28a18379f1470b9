package decimal

import (
	"math"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("decimal")

// SyntaxError is the error class for malformed decimal text.
var SyntaxError = errs.Class("decimal syntax")

// Wide is a decimal floating point number packed into 64 bits. The zero
// value is NaN.
type Wide int64

// Special values.
const (
	NaN              Wide = 0
	PositiveInfinity Wide = 0x100
	NegativeInfinity Wide = -0x100

	// Zero is the canonical zero with a scale of 0.
	Zero Wide = Bias
)

// Limits of the packed representation.
const (
	// Bias is the rank that corresponds to a scale of 0.
	Bias = 128

	MaxSignificand = math.MaxInt64 >> 8
	MinSignificand = math.MinInt64 >> 8

	// MaxScale and MinScale bound the scale of a finite value.
	MaxScale = 255 - Bias
	MinScale = 1 - Bias
)

// Literals used for the special values.
const (
	NaNString              = "NaN"
	PositiveInfinityString = "Infinity"
	NegativeInfinityString = "-Infinity"
)

// MaxValue returns the largest finite value.
func MaxValue() Wide {
	return pack(MaxSignificand, 1)
}

// MinValue returns the smallest (most negative) finite value.
func MinValue() Wide {
	return pack(MinSignificand, 1)
}

// pack does not validate its arguments.
func pack(significand int64, rank int) Wide {
	return Wide(significand<<8 | int64(rank))
}

func unpack(w Wide) (significand int64, rank int) {
	return int64(w) >> 8, int(w) & 0xFF
}

// Significand returns the signed significand of w.
func (w Wide) Significand() int64 {
	return int64(w) >> 8
}

// Scale returns the number of fractional digits encoded in w. A negative
// scale multiplies the significand by a power of ten. Special values report
// a scale of -Bias.
func (w Wide) Scale() int {
	return int(w)&0xFF - Bias
}

// IsNaN reports whether w is NaN.
func (w Wide) IsNaN() bool {
	return w == NaN
}

// IsInf reports whether w is an infinity.
func (w Wide) IsInf() bool {
	return w&0xFF == 0 && w != NaN
}

// IsFinite reports whether w is neither NaN nor an infinity.
func (w Wide) IsFinite() bool {
	return w&0xFF != 0
}

// IsDefined reports whether w is not NaN.
func (w Wide) IsDefined() bool {
	return w != NaN
}

// Sign returns -1, 0 or +1 depending on the sign of w. NaN has sign 0.
func (w Wide) Sign() int {
	s := w.Significand()

	switch {
	case s > 0:
		return 1
	case s < 0:
		return -1
	}

	return 0
}

// Neg returns -w. Infinities swap and NaN stays NaN.
func (w Wide) Neg() Wide {
	if s, rank := unpack(w); s == MinSignificand && rank != 0 {
		return reduceAndFit(-s, rank, rank)
	}

	return (w ^ -0x100) + 0x100
}

// Abs returns the absolute value of w.
func (w Wide) Abs() Wide {
	if w >= 0 {
		return w
	}

	return w.Neg()
}

// nonFinite returns the sentinel that matches the sign of s.
func nonFinite(s int64) Wide {
	switch {
	case s > 0:
		return PositiveInfinity
	case s < 0:
		return NegativeInfinity
	}

	return NaN
}

func clampRank(rank int) int {
	switch {
	case rank < 1:
		return 1
	case rank > 255:
		return 255
	}

	return rank
}
