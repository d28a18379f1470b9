package decimal

import (
	"encoding/binary"
	"math/big"
	"strconv"
)

// MarshalText implements encoding.TextMarshaler.
func (w Wide) MarshalText() (text []byte, err error) {
	return w.Append(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Wide) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*w = v

	return nil
}

// MarshalJSON implements json.Marshaler. Finite values are written as JSON
// numbers and special values as quoted literals.
func (w Wide) MarshalJSON() (data []byte, err error) {
	if !w.IsFinite() {
		return strconv.AppendQuote(nil, w.String()), nil
	}

	return w.Append(nil), nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts numbers, quoted
// numbers and quoted literals. A JSON null leaves w unchanged.
func (w *Wide) UnmarshalJSON(data []byte) (err error) {
	defer Error.WrapP(&err)

	s := string(data)
	if s == "null" {
		return nil
	}

	if len(s) >= 2 && s[0] == '"' {
		s, err = strconv.Unquote(s)
		if err != nil {
			return err
		}
	}

	return w.UnmarshalText([]byte(s))
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is the
// packed word in big endian byte order.
func (w Wide) MarshalBinary() (data []byte, err error) {
	return binary.BigEndian.AppendUint64(nil, uint64(w)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (w *Wide) UnmarshalBinary(data []byte) (err error) {
	if len(data) != 8 {
		return Error.New("invalid binary length: %d", len(data))
	}

	*w = Wide(binary.BigEndian.Uint64(data))

	return nil
}

// Forms reported by Decompose and accepted by Compose.
const (
	FormFinite   byte = 0
	FormInfinite byte = 1
	FormNaN      byte = 2
)

// Decompose returns the parts of w: a form, the sign, the big endian
// magnitude of the significand and a base 10 exponent. If buf has enough
// capacity it is used for the coefficient.
func (w Wide) Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32) {
	significand, rank := unpack(w)

	switch {
	case w.IsNaN():
		return FormNaN, false, nil, 0
	case rank == 0:
		return FormInfinite, significand < 0, nil, 0
	}

	negative = significand < 0
	if negative {
		significand = -significand
	}

	coefficient = binary.BigEndian.AppendUint64(buf[:0], uint64(significand))
	for len(coefficient) > 0 && coefficient[0] == 0 {
		coefficient = coefficient[1:]
	}

	return FormFinite, negative, coefficient, int32(Bias - rank)
}

// Compose sets w from parts as produced by Decompose. Coefficients wider
// than the significand lose their low digits. Values outside the range become
// infinities.
func (w *Wide) Compose(form byte, negative bool, coefficient []byte, exponent int32) (err error) {
	switch form {
	case FormFinite:
	case FormInfinite:
		*w = PositiveInfinity
		if negative {
			*w = NegativeInfinity
		}

		return nil
	case FormNaN:
		*w = NaN

		return nil
	default:
		return Error.New("unknown form: %d", form)
	}

	c := new(big.Int).SetBytes(coefficient)
	if negative {
		c.Neg(c)
	}

	if c.IsInt64() {
		*w = New(c.Int64(), -int(exponent))

		return nil
	}

	v, err := Parse(c.String() + "e" + strconv.Itoa(int(exponent)))
	if err != nil {
		return err
	}

	*w = v

	return nil
}
