package decimal

import "math"

// align scales the operand with the smaller rank so both significands share
// the larger rank. It fails when the scaled significand overflows.
func align(s1 int64, r1 int, s2 int64, r2 int) (a, b int64, rank int, ok bool) {
	switch {
	case r1 == r2:
		return s1, s2, r1, true
	case r1 > r2:
		scaled, ok := scaleUp(s2, r1-r2)
		return s1, scaled, r1, ok
	}

	scaled, ok := scaleUp(s1, r2-r1)

	return scaled, s2, r2, ok
}

// scaleUp returns s * 10^digits if it does not overflow.
func scaleUp(s int64, digits int) (int64, bool) {
	if digits > exactLongPowers {
		return 0, false
	}

	pow10 := longPowers[digits]

	scaled := s * pow10
	if scaled/pow10 != s {
		return 0, false
	}

	return scaled, true
}

// addAligned adds two finite operands in integer arithmetic. The sum is
// returned unreduced together with its rank.
func addAligned(w1, w2 Wide) (sum int64, rank int, ok bool) {
	s1, r1 := unpack(w1)
	s2, r2 := unpack(w2)

	if r1 == 0 || r2 == 0 {
		return 0, 0, false
	}

	a, b, rank, ok := align(s1, r1, s2, r2)
	if !ok {
		return 0, 0, false
	}

	sum = a + b
	if (sum^a)&(sum^b) < 0 {
		return 0, 0, false
	}

	return sum, rank, true
}

// Add returns w1 + w2. Finite operands are added exactly when their scales
// can be aligned in 64 bits; the result keeps the larger of the two scales
// when possible.
func (w1 Wide) Add(w2 Wide) Wide {
	if sum, rank, ok := addAligned(w1, w2); ok {
		return reduceAndFit(sum, rank, rank)
	}

	if w1.IsNaN() || w2.IsNaN() {
		return NaN
	}

	return FromFloat(w1.Float64() + w2.Float64())
}

// Sub returns w1 - w2.
func (w1 Wide) Sub(w2 Wide) Wide {
	return w1.Add(w2.Neg())
}

// Mul returns w1 * w2, preferring a scale of 0.
func (w1 Wide) Mul(w2 Wide) Wide {
	s1, r1 := unpack(w1)
	s2, r2 := unpack(w2)

	if r1 > 0 && r2 > 0 {
		if s1 == 0 || s2 == 0 {
			return Zero
		}

		// Trailing zeros only cost headroom.
		for s1%10 == 0 {
			s1 /= 10
			r1--
		}

		for s2%10 == 0 {
			s2 /= 10
			r2--
		}

		product := s1 * s2
		if product/s2 == s1 {
			return reduceAndFit(product, r1+r2-Bias, Bias)
		}
	}

	if w1.IsNaN() || w2.IsNaN() {
		return NaN
	}

	return FromFloat(w1.Float64() * w2.Float64())
}

// Div returns w1 / w2, preferring a scale of 0. Division by zero returns an
// infinity with the sign of w1, or NaN for 0/0.
func (w1 Wide) Div(w2 Wide) Wide {
	s1, r1 := unpack(w1)
	s2, r2 := unpack(w2)

	if r1 > 0 && r2 > 0 && s2 != 0 {
		if s1 == 0 {
			return Zero
		}

		for s2%10 == 0 {
			s2 /= 10
			r2--
		}

		// Give the quotient as many digits as the dividend can hold.
		for s1 >= math.MinInt64/10 && s1 <= math.MaxInt64/10 {
			s1 *= 10
			r1++
		}

		quotient := s1 / s2
		if quotient*s2 == s1 {
			return reduceAndFit(quotient, r1-r2+Bias, Bias)
		}
	}

	if w1.IsNaN() || w2.IsNaN() {
		return NaN
	}

	return FromFloat(w1.Float64() / w2.Float64())
}

// Avg returns (w1 + w2) / 2.
func (w1 Wide) Avg(w2 Wide) Wide {
	if sum, rank, ok := addAligned(w1, w2); ok {
		// sum * 5 at one more digit of scale is sum / 2.
		if sum >= math.MinInt64/5 && sum <= math.MaxInt64/5 {
			return reduceAndFit(sum*5, rank+1, rank)
		}

		if sum%2 == 0 {
			return reduceAndFit(sum/2, rank, rank)
		}
	}

	if w1.IsNaN() || w2.IsNaN() {
		return NaN
	}

	return FromFloat(w1.Float64()/2 + w2.Float64()/2)
}

// AddDefined is like Add but returns the other operand when exactly one of
// them is NaN.
func (w1 Wide) AddDefined(w2 Wide) Wide {
	return defined(w1, w2, Wide.Add)
}

// SubDefined is like Sub but returns the other operand when exactly one of
// them is NaN.
func (w1 Wide) SubDefined(w2 Wide) Wide {
	return defined(w1, w2, Wide.Sub)
}

// MulDefined is like Mul but returns the other operand when exactly one of
// them is NaN.
func (w1 Wide) MulDefined(w2 Wide) Wide {
	return defined(w1, w2, Wide.Mul)
}

// DivDefined is like Div but returns the other operand when exactly one of
// them is NaN.
func (w1 Wide) DivDefined(w2 Wide) Wide {
	return defined(w1, w2, Wide.Div)
}

// AvgDefined is like Avg but returns the other operand when exactly one of
// them is NaN.
func (w1 Wide) AvgDefined(w2 Wide) Wide {
	return defined(w1, w2, Wide.Avg)
}

func defined(w1, w2 Wide, op func(Wide, Wide) Wide) Wide {
	switch {
	case w1.IsNaN():
		return w2
	case w2.IsNaN():
		return w1
	}

	return op(w1, w2)
}
