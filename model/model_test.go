package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/chifit/errs"
)

func TestLinearEvaluate(t *testing.T) {
	x := []float64{-2, 0, 1, 3.5}
	got, err := Evaluate(Linear{}, x, []float64{1.5, -2})
	require.NoError(t, err)
	require.Equal(t, []float64{5.5, 1.5, -0.5, -5.5}, got)
}

func TestLinearRejectsWrongParameterCount(t *testing.T) {
	for _, args := range [][]float64{nil, {1}, {1, 2, 3}} {
		_, err := Evaluate(Linear{}, []float64{1, 2}, args)
		require.ErrorIs(t, err, errs.ErrInvalidParameters, "args=%v", args)
	}
}

func TestPolynomialEvaluate(t *testing.T) {
	tests := []struct {
		name string
		args []float64
		x    []float64
		want []float64
	}{
		{"constant", []float64{4}, []float64{-1, 0, 10}, []float64{4, 4, 4}},
		{"linear", []float64{1, 2}, []float64{0, 1, 2}, []float64{1, 3, 5}},
		{"quadratic", []float64{1, 0, 3}, []float64{0, 1, 2}, []float64{1, 4, 13}},
		{"cubic", []float64{0, 0, 0, 1}, []float64{-2, 2}, []float64{-8, 8}},
		{"empty x", []float64{1, 1}, []float64{}, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewPolynomial(len(tt.args) - 1)
			require.NoError(t, err)

			got, err := Evaluate(m, tt.x, tt.args)
			require.NoError(t, err)
			require.InDeltaSlice(t, tt.want, got, 1e-12)
		})
	}
}

func TestPolynomialMatchesLinear(t *testing.T) {
	x := []float64{0.5, 1.25, 7, -3}
	args := []float64{-0.7, 2.3}

	lin, err := Evaluate(Linear{}, x, args)
	require.NoError(t, err)
	poly, err := Poly(x, args)
	require.NoError(t, err)
	require.InDeltaSlice(t, lin, poly, 1e-15)
}

func TestPolynomialIsLinearInCoefficients(t *testing.T) {
	x := []float64{-1.5, 0, 0.3, 2, 4.75}
	base := []float64{0.5, -1, 2, 0.25}

	for j := range base {
		for _, c := range []float64{-3, 0, 0.5, 10} {
			scaled := append([]float64(nil), base...)
			scaled[j] *= c

			yBase, err := Poly(x, base)
			require.NoError(t, err)
			yScaled, err := Poly(x, scaled)
			require.NoError(t, err)

			for i, xi := range x {
				term := base[j] * math.Pow(xi, float64(j))
				want := yBase[i] - term + c*term
				require.InDelta(t, want, yScaled[i], 1e-9, "coef=%d c=%v x=%v", j, c, xi)
			}
		}
	}
}

func TestPolynomialInvalid(t *testing.T) {
	_, err := NewPolynomial(-1)
	require.ErrorIs(t, err, errs.ErrInvalidParameters)

	_, err = Poly([]float64{1, 2}, nil)
	require.ErrorIs(t, err, errs.ErrInvalidParameters)

	m, err := NewPolynomial(2)
	require.NoError(t, err)
	_, err = Evaluate(m, []float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, errs.ErrInvalidParameters)

	_, err = Evaluate(Polynomial{Degree: -1}, []float64{1}, nil)
	require.ErrorIs(t, err, errs.ErrInvalidParameters)
}

func TestEvaluateToLengthMismatch(t *testing.T) {
	err := Linear{}.EvaluateTo(make([]float64, 2), []float64{1, 2, 3}, []float64{0, 1})
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}

func TestEvaluateNilModel(t *testing.T) {
	_, err := Evaluate(nil, []float64{1}, []float64{1})
	require.ErrorIs(t, err, errs.ErrInvalidParameters)
}

func TestExponentialAndPowerLaw(t *testing.T) {
	x := []float64{0, 1, 2}

	exp, err := Evaluate(Exponential{}, x, []float64{2, 0.5})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2, 2 * math.Exp(0.5), 2 * math.E}, exp, 1e-12)

	pow, err := Evaluate(PowerLaw{}, []float64{1, 4, 9}, []float64{3, 0.5})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{3, 6, 9}, pow, 1e-12)

	_, err = Evaluate(PowerLaw{}, []float64{-2}, []float64{1, 0.5})
	require.ErrorIs(t, err, errs.ErrNonFinite)
}

func TestEvaluateIsIdempotent(t *testing.T) {
	x := []float64{0.1, 0.7, 1.9, 3.3, 8.8}
	args := []float64{0.3, -1.7, 0.05, 1e-3}
	m := Polynomial{Degree: 3}

	first, err := Evaluate(m, x, args)
	require.NoError(t, err)
	for range 5 {
		again, err := Evaluate(m, x, args)
		require.NoError(t, err)
		for i := range first {
			require.Equal(t, math.Float64bits(first[i]), math.Float64bits(again[i]))
		}
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		degree int
		kind   Kind
		params int
	}{
		{"linear", 0, KindLinear, 2},
		{"Polynomial", 3, KindPolynomial, 4},
		{"poly", 0, KindPolynomial, 1},
		{"EXP", 0, KindExponential, 2},
		{"power", 0, KindPowerLaw, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.name, tt.degree)
			require.NoError(t, err)
			require.Equal(t, tt.kind, m.Kind())
			require.Equal(t, tt.params, m.NumParams())
		})
	}

	_, err := New("spline", 0)
	require.ErrorIs(t, err, errs.ErrUnknownModel)
	require.Contains(t, err.Error(), "exponential, linear, polynomial, powerlaw")

	_, err = New("polynomial", -2)
	require.ErrorIs(t, err, errs.ErrInvalidParameters)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "linear", KindLinear.String())
	require.Equal(t, "polynomial", KindPolynomial.String())
	require.Equal(t, "exponential", KindExponential.String())
	require.Equal(t, "powerlaw", KindPowerLaw.String())
	require.Equal(t, "unknown", Kind(42).String())
	require.Equal(t, Kind(-1), KindFromString("cubic"))
}

func TestFormula(t *testing.T) {
	require.Equal(t, "y = 1 + 2*x", Formula(Linear{}, []float64{1, 2}))
	require.Equal(t, "y = 2.337 * x^1.464", Formula(PowerLaw{}, []float64{2.337475, 1.463986}))
	require.Equal(t, "y = 1 * e^(0.5*x)", Formula(Exponential{}, []float64{1, 0.5}))
	require.Equal(t, "y = 1 + 0*x + 3*x^2", Formula(Polynomial{Degree: 2}, []float64{1, 0, 3}))
	require.Equal(t, "invalid", Formula(Linear{}, []float64{1}))
}

func BenchmarkPolynomialEvaluateTo(b *testing.B) {
	x := make([]float64, 1000)
	for i := range x {
		x[i] = float64(i) / 100
	}
	dst := make([]float64, len(x))
	m := Polynomial{Degree: 4}
	args := []float64{1, -0.5, 0.25, -0.125, 0.0625}

	b.ReportAllocs()
	for b.Loop() {
		_ = m.EvaluateTo(dst, x, args)
	}
}
