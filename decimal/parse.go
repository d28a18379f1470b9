package decimal

import (
	"fmt"
	"math"
	"strings"
)

// maxAccumulator is the largest significand that can take another digit.
const maxAccumulator = (math.MaxInt64 - 9) / 10

// Parse converts decimal text to a Wide, preferring a scale of 0. The
// accepted grammar is:
//
//	sign     ::= '+' | '-'
//	digits   ::= { '0' .. '9' }
//	exponent ::= ('e' | 'E') [sign] digits
//	number   ::= [sign] (digits ['.' digits] | '.' digits) [exponent]
//	literal  ::= "NaN" | ['+'] "Infinity" | "-Infinity"
//
// Surrounding white space is ignored. Digits that no longer fit in 64 bits
// are dropped without rounding; the remaining digits are then rounded half up
// to the precision of the significand.
func Parse(s string) (Wide, error) {
	return parse(s, Bias)
}

// ParseToScale is like Parse but moves the result toward the given scale
// when that is lossless.
func ParseToScale(s string, scale int) (Wide, error) {
	return parse(s, clampRank(scale+Bias))
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Wide {
	w, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}

	return w
}

func parse(s string, targetRank int) (Wide, error) {
	s = strings.TrimSpace(s)

	n := len(s)
	if n == 0 {
		return NaN, SyntaxError.New("empty string")
	}

	i := 0
	negative := false

	c := s[i]
	if c == '+' || c == '-' {
		negative = c == '-'

		i++
		if i >= n {
			return NaN, SyntaxError.New("no digits in %q", s)
		}

		c = s[i]
	}

	if c == 'N' || c == 'I' {
		return parseLiteral(s)
	}

	// Invariant: the number read so far is significand * 10^-scale.
	var (
		significand int64
		scale       int
		dot         int
		truncated   int
		digits      bool
	)

	for {
		switch {
		case c >= '0' && c <= '9':
			digits = true

			if truncated == 0 {
				if significand > maxAccumulator {
					truncated = 1
				} else {
					significand = significand*10 + int64(c-'0')
				}
			}

			scale += dot - truncated
		case c == '.':
			if dot != 0 {
				return NaN, SyntaxError.New("second dot in %q", s)
			}

			dot = 1
		case c == 'e' || c == 'E':
			if !digits {
				return NaN, SyntaxError.New("no digits in %q", s)
			}

			exp, err := parseExponent(s, i+1)
			if err != nil {
				return NaN, err
			}

			scale -= exp
			i = n
		default:
			return NaN, SyntaxError.New("illegal character in %q", s)
		}

		i++
		if i >= n {
			break
		}

		c = s[i]
	}

	if !digits {
		return NaN, SyntaxError.New("no digits in %q", s)
	}

	if significand == 0 {
		return pack(0, targetRank), nil
	}

	if negative {
		significand = -significand
	}

	return reduceAndFit(significand, scale+Bias, targetRank), nil
}

func parseLiteral(s string) (Wide, error) {
	switch s {
	case NaNString:
		return NaN, nil
	case PositiveInfinityString, "+" + PositiveInfinityString:
		return PositiveInfinity, nil
	case NegativeInfinityString:
		return NegativeInfinity, nil
	}

	return NaN, SyntaxError.New("illegal literal %q", s)
}

// parseExponent reads the exponent that starts at s[i]. Its magnitude is
// clamped to maxExponent.
func parseExponent(s string, i int) (exp int, err error) {
	n := len(s)
	if i >= n {
		return 0, SyntaxError.New("empty exponent in %q", s)
	}

	negative := false

	c := s[i]
	if c == '+' || c == '-' {
		negative = c == '-'

		i++
		if i >= n {
			return 0, SyntaxError.New("no digits in exponent in %q", s)
		}
	}

	for ; i < n; i++ {
		c = s[i]
		if c < '0' || c > '9' {
			return 0, SyntaxError.New("illegal character in exponent in %q", s)
		}

		exp = min(exp*10+int(c-'0'), maxExponent)
	}

	if negative {
		return -exp, nil
	}

	return exp, nil
}
