package decimal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/cockroachdb/apd"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/oops"
	"github.com/calebcase/wide/decimal"
	"github.com/calebcase/wide/interop"
)

// exact computes the result of op with apd and converts it back.
func exact(t *testing.T, op string, a, b decimal.Wide) decimal.Wide {
	t.Helper()

	ctx := apd.Context{
		MaxExponent: apd.BaseContext.MaxExponent,
		MinExponent: apd.MinExponent,
		Precision:   50,
		Rounding:    apd.BaseContext.Rounding,
		Traps:       apd.BaseContext.Traps,
	}

	x := interop.ToAPD(a)
	y := interop.ToAPD(b)
	r := new(apd.Decimal)

	var err error

	switch op {
	case "+":
		_, err = ctx.Add(r, x, y)
	case "-":
		_, err = ctx.Sub(r, x, y)
	case "*":
		_, err = ctx.Mul(r, x, y)
	case "/":
		_, err = ctx.Quo(r, x, y)
	case "avg":
		sum := new(apd.Decimal)

		_, err = ctx.Add(sum, x, y)
		if err == nil {
			_, err = ctx.Quo(r, sum, apd.New(2, 0))
		}
	default:
		t.Fatalf("unknown op: %s", op)
	}

	require.NoError(t, err)

	return decimal.MustParse(r.String())
}

func apply(op string, a, b decimal.Wide) decimal.Wide {
	switch op {
	case "+":
		return a.Add(b)
	case "-":
		return a.Sub(b)
	case "*":
		return a.Mul(b)
	case "/":
		return a.Div(b)
	case "avg":
		return a.Avg(b)
	}

	panic("unknown op: " + op)
}

func TestArithmetic(t *testing.T) {
	type TC struct {
		Op   string
		A    string
		B    string
		Mark error
	}

	tcs := []TC{
		{Op: "+", A: "0.01", B: "0.02", Mark: oops.New("unexpected")},
		{Op: "+", A: "1.5", B: "-2.25", Mark: oops.New("unexpected")},
		{Op: "+", A: "1E100", B: "1E100", Mark: oops.New("unexpected")},
		{Op: "+", A: "-7.25", B: "7.25", Mark: oops.New("unexpected")},
		{Op: "-", A: "0.3", B: "0.1", Mark: oops.New("unexpected")},
		{Op: "-", A: "1", B: "1000000.000001", Mark: oops.New("unexpected")},
		{Op: "*", A: "100", B: "0.01", Mark: oops.New("unexpected")},
		{Op: "*", A: "0.5", B: "0.5", Mark: oops.New("unexpected")},
		{Op: "*", A: "-1.5", B: "4", Mark: oops.New("unexpected")},
		{Op: "*", A: "123456.789", B: "1000", Mark: oops.New("unexpected")},
		{Op: "*", A: "1E-60", B: "1E-60", Mark: oops.New("unexpected")},
		{Op: "/", A: "7", B: "8", Mark: oops.New("unexpected")},
		{Op: "/", A: "1", B: "4", Mark: oops.New("unexpected")},
		{Op: "/", A: "-10", B: "0.5", Mark: oops.New("unexpected")},
		{Op: "/", A: "1.44", B: "1.2", Mark: oops.New("unexpected")},
		{Op: "/", A: "1E100", B: "1E-20", Mark: oops.New("unexpected")},
		{Op: "avg", A: "1", B: "2", Mark: oops.New("unexpected")},
		{Op: "avg", A: "0.01", B: "0.03", Mark: oops.New("unexpected")},
		{Op: "avg", A: "-3", B: "0.5", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s%s%s", i, tc.A, tc.Op, tc.B), func(t *testing.T) {
			a := decimal.MustParse(tc.A)
			b := decimal.MustParse(tc.B)

			want := exact(t, tc.Op, a, b)
			got := apply(tc.Op, a, b)

			require.True(t, want.Equal(got), "%s != %s %+v", want, got, tc.Mark)
		})
	}
}

func TestArithmeticScale(t *testing.T) {
	require.Equal(t, decimal.New(3, 2), decimal.New(1, 2).Add(decimal.New(2, 2)))
	require.Equal(t, decimal.FromInt(1), decimal.FromInt(100).Mul(decimal.NewToScale(1, 2)))
	require.Equal(t, decimal.FromInt(5), decimal.FromInt(2).Add(decimal.FromInt(3)))

	// Add keeps the larger scale.
	sum := decimal.MustParse("1.5").Add(decimal.MustParse("2.25"))
	require.Equal(t, 2, sum.Scale())
	require.Equal(t, "3.75", sum.String())

	// Mul and Div prefer scale 0.
	require.Equal(t, 0, decimal.MustParse("0.5").Mul(decimal.FromInt(4)).Scale())
	require.Equal(t, 0, decimal.MustParse("1.5").Div(decimal.MustParse("0.5")).Scale())

	require.Equal(t, 3, decimal.MustParse("0.875").Scale())
	require.Equal(t, decimal.MustParse("0.875"), decimal.FromInt(7).Div(decimal.FromInt(8)))
}

func TestArithmeticSpecial(t *testing.T) {
	five := decimal.FromInt(5)
	one := decimal.FromInt(1)

	type TC struct {
		Name string
		Got  decimal.Wide
		Want decimal.Wide
	}

	tcs := []TC{
		{"NaN+5", decimal.NaN.Add(five), decimal.NaN},
		{"5+NaN", five.Add(decimal.NaN), decimal.NaN},
		{"NaN*5", decimal.NaN.Mul(five), decimal.NaN},
		{"5/NaN", five.Div(decimal.NaN), decimal.NaN},
		{"avg(NaN,5)", decimal.NaN.Avg(five), decimal.NaN},
		{"Inf+1", decimal.PositiveInfinity.Add(one), decimal.PositiveInfinity},
		{"-Inf-1", decimal.NegativeInfinity.Sub(one), decimal.NegativeInfinity},
		{"Inf+-Inf", decimal.PositiveInfinity.Add(decimal.NegativeInfinity), decimal.NaN},
		{"Inf*-1", decimal.PositiveInfinity.Mul(one.Neg()), decimal.NegativeInfinity},
		{"1/0", one.Div(decimal.Zero), decimal.PositiveInfinity},
		{"-1/0", one.Neg().Div(decimal.Zero), decimal.NegativeInfinity},
		{"0/0", decimal.Zero.Div(decimal.Zero), decimal.NaN},
		{"0/5", decimal.ZeroToScale(4).Div(five), decimal.Zero},
		{"0*Inf", decimal.Zero.Mul(decimal.PositiveInfinity), decimal.NaN},
		{"0*5", decimal.ZeroToScale(3).Mul(five), decimal.Zero},
		{"1/Inf", one.Div(decimal.PositiveInfinity), decimal.Zero},
		{"Max+Max", decimal.MaxValue().Add(decimal.MaxValue()), decimal.PositiveInfinity},
		{"Min+Min", decimal.MinValue().Add(decimal.MinValue()), decimal.NegativeInfinity},
		{"Max*10", decimal.MaxValue().Mul(decimal.FromInt(10)), decimal.PositiveInfinity},
		{"avg(Max,Max)", decimal.MaxValue().Avg(decimal.MaxValue()), decimal.MaxValue()},
		{"tiny*tiny", decimal.NewToScale(1, 127).Mul(decimal.NewToScale(1, 127)), decimal.Zero},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Name), func(t *testing.T) {
			require.Equal(t, tc.Want, tc.Got, "%s != %s", tc.Want, tc.Got)
		})
	}
}

func TestArithmeticDefined(t *testing.T) {
	five := decimal.FromInt(5)
	two := decimal.FromInt(2)

	require.Equal(t, five, decimal.NaN.AddDefined(five))
	require.Equal(t, five, five.AddDefined(decimal.NaN))
	require.Equal(t, five, decimal.NaN.SubDefined(five))
	require.Equal(t, five, decimal.NaN.MulDefined(five))
	require.Equal(t, five, five.DivDefined(decimal.NaN))
	require.Equal(t, five, decimal.NaN.AvgDefined(five))
	require.Equal(t, decimal.NaN, decimal.NaN.AddDefined(decimal.NaN))

	require.Equal(t, decimal.FromInt(7), five.AddDefined(two))
	require.Equal(t, decimal.FromInt(3), five.SubDefined(two))
	require.Equal(t, decimal.FromInt(10), five.MulDefined(two))
	require.True(t, decimal.MustParse("2.5").Equal(five.DivDefined(two)))
	require.True(t, decimal.MustParse("3.5").Equal(five.AvgDefined(two)))
}

func TestArithmeticInexact(t *testing.T) {
	third := decimal.FromInt(1).Div(decimal.FromInt(3))

	require.Equal(t, 1, decimal.Compare(third, decimal.MustParse("0.3333333333333")))
	require.Equal(t, -1, decimal.Compare(third, decimal.MustParse("0.3333333333334")))
}

func TestArithmeticNearMax(t *testing.T) {
	large := decimal.MustParse("3e142")

	for i, w := range []decimal.Wide{
		large.Sub(decimal.FromInt(1)),
		large.Add(decimal.MustParse("1e-10")),
		large.Neg().Add(decimal.FromInt(1)),
		decimal.MaxValue().Sub(decimal.FromInt(1)),
		decimal.MaxValue().Mul(decimal.MustParse("0.999")),
		decimal.MinValue().Add(decimal.FromInt(1)),
	} {
		require.True(t, w.IsFinite(), "[%d]%s", i, w)
		require.LessOrEqual(t, decimal.Compare(w, decimal.MaxValue()), 0, "[%d]%s", i, w)
		require.GreaterOrEqual(t, decimal.Compare(w, decimal.MinValue()), 0, "[%d]%s", i, w)
	}

	require.Equal(t, -1, decimal.Compare(large.Sub(decimal.FromInt(1)), decimal.MaxValue()))
	require.Equal(t, decimal.PositiveInfinity, decimal.MaxValue().Add(decimal.MaxValue()))
}

func TestArithmeticRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	operand := func() decimal.Wide {
		return decimal.New(rng.Int63n(2000001)-1000000, rng.Intn(7))
	}

	for i := 0; i < 2000; i++ {
		a := operand()
		b := operand()

		for _, op := range []string{"+", "-", "*", "avg"} {
			want := exact(t, op, a, b)
			got := apply(op, a, b)

			require.True(t, want.Equal(got), "%s %s %s: %s != %s", a, op, b, want, got)
		}
	}
}

func BenchmarkAdd(b *testing.B) {
	x := decimal.MustParse("12345.6789")
	y := decimal.MustParse("-0.001")

	for n := 0; n < b.N; n++ {
		x.Add(y)
	}
}

func BenchmarkMul(b *testing.B) {
	x := decimal.MustParse("12345.6789")
	y := decimal.MustParse("-0.001")

	for n := 0; n < b.N; n++ {
		x.Mul(y)
	}
}
