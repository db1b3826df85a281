package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/chifit/chisq"
	"github.com/arloliu/chifit/errs"
	"github.com/arloliu/chifit/model"
	"github.com/arloliu/chifit/sample"
)

// Polynomial fits y = Σ c[j] x^j (j = 0..degree) by weighted least squares.
//
// Each row of the Vandermonde matrix and each observation is divided by its
// dy, and the resulting system is solved with a QR factorization. Parameter
// errors are the square roots of the diagonal of (AᵀA)⁻¹.
//
// Parameters:
//   - s: Sample set with more than degree+1 observations
//   - degree: Polynomial degree (>= 0)
//
// Returns:
//   - *Result: Fitted polynomial; Params[j] is the coefficient of x^j
//   - error: errs.ErrInvalidParameters for a negative degree,
//     errs.ErrDegreesOfFreedom when N <= degree+1, errs.ErrSingularFit when
//     the x values cannot determine degree+1 coefficients
func Polynomial(s sample.Set, degree int) (*Result, error) {
	m, err := model.NewPolynomial(degree)
	if err != nil {
		return nil, err
	}

	n := s.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty sample set", errs.ErrEmptyInput)
	}

	k := m.NumParams()
	if _, err := chisq.DOF(n, k); err != nil {
		return nil, err
	}

	a := weightedVandermonde(s.X(), s.DY(), degree)
	b := mat.NewVecDense(n, nil)
	for i, yi := range s.Y() {
		b.SetVec(i, yi/s.DY()[i])
	}

	var qr mat.QR
	qr.Factorize(a)

	c := mat.NewVecDense(k, nil)
	if err := qr.SolveVecTo(c, false, b); err != nil {
		return nil, fmt.Errorf("%w: degree %d: %v", errs.ErrSingularFit, degree, err)
	}

	var ata, cov mat.Dense
	ata.Mul(a.T(), a)
	if err := cov.Inverse(&ata); err != nil {
		return nil, fmt.Errorf("%w: degree %d covariance: %v", errs.ErrSingularFit, degree, err)
	}

	params := mat.Col(nil, 0, c)
	paramErrs := make([]float64, k)
	for j := range k {
		paramErrs[j] = math.Sqrt(cov.At(j, j))
	}

	return newResult(s, m, params, paramErrs)
}

// weightedVandermonde returns the n×(degree+1) matrix with rows x[i]^j / dy[i].
func weightedVandermonde(x, dy []float64, degree int) *mat.Dense {
	a := mat.NewDense(len(x), degree+1, nil)
	for i := range x {
		for j, p := 0, 1/dy[i]; j <= degree; j, p = j+1, p*x[i] {
			a.Set(i, j, p)
		}
	}

	return a
}
