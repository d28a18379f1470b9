package decimal

import "strconv"

// maxStringLength covers a sign, 17 digits and the widest padding.
const maxStringLength = 18 + 2 + maxLeadingZeros + 6

// String returns the decimal text of w. Integers and fractions with few
// leading or trailing zeros use plain notation, other values use scientific
// notation such as 1.5E-9.
func (w Wide) String() string {
	return string(w.Append(make([]byte, 0, maxStringLength)))
}

// Append appends the decimal text of w to b and returns the extended buffer.
func (w Wide) Append(b []byte) []byte {
	significand, rank := unpack(w)

	if rank == 0 {
		return append(b, nonFiniteStrings[nonFiniteIndex(significand)]...)
	}

	if significand == 0 {
		return append(b, '0')
	}

	if v, ok := integerValue(significand, rank); ok {
		return strconv.AppendInt(b, v, 10)
	}

	return appendFractionalOrScientific(b, significand, rank)
}

// integerValue returns the integer that w represents when it is exact and
// does not need scientific notation.
func integerValue(significand int64, rank int) (int64, bool) {
	if rank > Bias {
		// Fraction that may have an all zero fractional part.
		if rank-Bias <= exactLongPowers {
			pow10 := longPowers[rank-Bias]

			v := significand / pow10
			if v*pow10 == significand && v%scientificModulo != 0 {
				return v, true
			}
		}

		return 0, false
	}

	// Integer with possible trailing zeros.
	if Bias-rank <= maxTrailingZeros {
		pow10 := longPowers[Bias-rank]

		v := significand * pow10
		if v/pow10 == significand && v%scientificModulo != 0 {
			return v, true
		}
	}

	return 0, false
}

func appendFractionalOrScientific(b []byte, significand int64, rank int) []byte {
	for significand%10 == 0 {
		significand /= 10
		rank--
	}

	firstDigit := len(b)
	if significand < 0 {
		firstDigit++
	}

	b = strconv.AppendInt(b, significand, 10)

	if rank > Bias {
		dot := len(b) - (rank - Bias)

		if dot > firstDigit {
			return insert(b, dot, ".")
		}

		// The leading "0" counts toward the budget of zeros.
		if firstDigit-dot < maxLeadingZeros {
			return insert(b, firstDigit, zeros[:2+firstDigit-dot])
		}
	} else if Bias-rank <= maxTrailingZeros {
		return append(b, zeros[2:2+Bias-rank]...)
	}

	digits := len(b) - firstDigit
	if digits != 1 {
		b = insert(b, firstDigit+1, ".")
	}

	b = append(b, exponentChar)

	return strconv.AppendInt(b, int64(Bias-rank+digits-1), 10)
}

// insert inserts s into b at position i.
func insert(b []byte, i int, s string) []byte {
	n := len(b)
	b = append(b, s...)
	copy(b[i+len(s):], b[i:n])
	copy(b[i:], s)

	return b
}
