package interop

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd"
	govalues "github.com/govalues/decimal"
	shopspring "github.com/shopspring/decimal"
	"github.com/zeebo/errs"
	"gopkg.in/inf.v0"

	"github.com/calebcase/wide/decimal"
)

// Error is the error class for this package.
var Error = errs.Class("interop")

// ErrNotFinite is returned when a special value has no counterpart in the
// target type.
var ErrNotFinite = Error.New("not a finite value")

// fromBig converts a sign, magnitude and base 10 exponent. Magnitudes wider
// than the significand lose their low digits.
func fromBig(negative bool, magnitude *big.Int, exponent int32) (w decimal.Wide, err error) {
	err = w.Compose(decimal.FormFinite, negative, magnitude.Bytes(), exponent)
	if err != nil {
		return decimal.NaN, Error.Wrap(err)
	}

	return w, nil
}

// ToAPD returns w as an apd decimal. Special values map to the NaN and
// Infinite forms.
func ToAPD(w decimal.Wide) *apd.Decimal {
	switch {
	case w.IsNaN():
		return &apd.Decimal{Form: apd.NaN}
	case w.IsInf():
		return &apd.Decimal{Form: apd.Infinite, Negative: w.Sign() < 0}
	}

	return apd.New(w.Significand(), int32(-w.Scale()))
}

// FromAPD returns d as a wide decimal. Both NaN forms become NaN.
func FromAPD(d *apd.Decimal) (w decimal.Wide, err error) {
	if d == nil {
		return decimal.NaN, Error.New("nil decimal")
	}

	switch d.Form {
	case apd.Finite:
		return fromBig(d.Negative, &d.Coeff, d.Exponent)
	case apd.Infinite:
		if d.Negative {
			return decimal.NegativeInfinity, nil
		}

		return decimal.PositiveInfinity, nil
	}

	return decimal.NaN, nil
}

// ToShopspring returns w as a shopspring decimal.
func ToShopspring(w decimal.Wide) (d shopspring.Decimal, err error) {
	if !w.IsFinite() {
		return d, ErrNotFinite
	}

	return shopspring.New(w.Significand(), int32(-w.Scale())), nil
}

// FromShopspring returns d as a wide decimal.
func FromShopspring(d shopspring.Decimal) (w decimal.Wide, err error) {
	c := d.Coefficient()
	negative := c.Sign() < 0

	return fromBig(negative, new(big.Int).Abs(c), d.Exponent())
}

// ToGovalues returns w as a govalues decimal. The conversion fails for
// special values and for integer parts wider than govalues allows. Extra
// fractional digits are rounded by govalues.
func ToGovalues(w decimal.Wide) (d govalues.Decimal, err error) {
	if !w.IsFinite() {
		return d, ErrNotFinite
	}

	d, err = govalues.Parse(plain(w.Significand(), w.Scale()))
	if err != nil {
		return d, Error.Wrap(err)
	}

	return d, nil
}

// FromGovalues returns d as a wide decimal keeping its scale when possible.
func FromGovalues(d govalues.Decimal) (w decimal.Wide, err error) {
	coef := d.Coef()
	if coef > math.MaxInt64 {
		return fromBig(d.Sign() < 0, new(big.Int).SetUint64(coef), int32(-d.Scale()))
	}

	significand := int64(coef)
	if d.Sign() < 0 {
		significand = -significand
	}

	return decimal.NewToScale(significand, d.Scale()), nil
}

// ToInf returns w as an inf.Dec.
func ToInf(w decimal.Wide) (d *inf.Dec, err error) {
	if !w.IsFinite() {
		return nil, ErrNotFinite
	}

	return inf.NewDec(w.Significand(), inf.Scale(w.Scale())), nil
}

// FromInf returns d as a wide decimal keeping its scale when possible.
func FromInf(d *inf.Dec) (w decimal.Wide, err error) {
	if d == nil {
		return decimal.NaN, Error.New("nil decimal")
	}

	if u, ok := d.Unscaled(); ok {
		return decimal.NewToScale(u, int(d.Scale())), nil
	}

	u := d.UnscaledBig()
	negative := u.Sign() < 0

	return fromBig(negative, new(big.Int).Abs(u), -int32(d.Scale()))
}

// plain formats a significand and scale without an exponent.
func plain(significand int64, scale int) string {
	s := strconv.FormatInt(significand, 10)
	if scale <= 0 {
		if significand == 0 {
			return s
		}

		return s + strings.Repeat("0", -scale)
	}

	sign := ""
	if significand < 0 {
		sign, s = "-", s[1:]
	}

	if len(s) <= scale {
		s = strings.Repeat("0", scale-len(s)+1) + s
	}

	return sign + s[:len(s)-scale] + "." + s[len(s)-scale:]
}
