package decimal

import "cmp"

// Compare returns -1, 0 or +1 depending on whether w1 is less than, equal
// to, or greater than w2 by value. NaN is greater than every other value,
// including PositiveInfinity, and equal to itself. Compare is suitable for
// slices.SortFunc.
func Compare(w1, w2 Wide) int {
	if w1 == w2 {
		return 0
	}

	s1, r1 := unpack(w1)
	s2, r2 := unpack(w2)

	if r1 > 0 && r2 > 0 {
		// Equal ranks order like their raw words.
		if r1 == r2 {
			if w1 > w2 {
				return 1
			}

			return -1
		}

		if a, b, _, ok := align(s1, r1, s2, r2); ok {
			return cmp.Compare(a, b)
		}
	}

	switch {
	case w1.IsNaN():
		return 1
	case w2.IsNaN():
		return -1
	case (w1 ^ w2) < 0:
		// Different signs.
		if w1 > w2 {
			return 1
		}

		return -1
	}

	return cmp.Compare(w1.Float64(), w2.Float64())
}

// Cmp is the method form of Compare.
func (w1 Wide) Cmp(w2 Wide) int {
	return Compare(w1, w2)
}

// Equal reports whether w1 and w2 have the same value, regardless of scale.
func (w1 Wide) Equal(w2 Wide) bool {
	return Compare(w1, w2) == 0
}

// Max returns the greater of w1 and w2.
func Max(w1, w2 Wide) Wide {
	if Compare(w1, w2) >= 0 {
		return w1
	}

	return w2
}

// Min returns the lesser of w1 and w2.
func Min(w1, w2 Wide) Wide {
	if Compare(w1, w2) <= 0 {
		return w1
	}

	return w2
}
