package stats

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/mat"
)

var ErrSingularDesign = errors.New("design matrix is singular")

type olsFit struct {
	coef   []float64
	stdErr []float64
	ssr    float64
	nobs   int
}

// ols fits y = x*b by least squares and returns the coefficients with their standard
// errors.
func ols(x *mat.Dense, y []float64) (*olsFit, error) {
	r, c := x.Dims()
	if r != len(y) {
		return nil, fmt.Errorf("design has %d rows and response %d values, %w", r, len(y), ErrResLenMismatch)
	}
	if r <= c {
		return nil, fmt.Errorf("%d observations for %d regressors, %w", r, c, ErrInsufficientData)
	}

	var beta mat.VecDense
	if err := beta.SolveVec(x, mat.NewVecDense(r, y)); err != nil && !illConditioned(err) {
		return nil, fmt.Errorf("unable to solve least squares, %w", err)
	}

	var fitted mat.VecDense
	fitted.MulVec(x, &beta)
	ssr := 0.0
	for i, v := range y {
		resid := v - fitted.AtVec(i)
		ssr += resid * resid
	}

	var xtx, xtxInv mat.Dense
	xtx.Mul(x.T(), x)
	if err := xtxInv.Inverse(&xtx); err != nil {
		if !illConditioned(err) {
			return nil, fmt.Errorf("unable to invert normal equations, %w", ErrSingularDesign)
		}
	}

	s2 := ssr / float64(r-c)
	stdErr := make([]float64, c)
	for i := range stdErr {
		stdErr[i] = math.Sqrt(s2 * xtxInv.At(i, i))
	}

	return &olsFit{
		coef:   mat.Col(nil, 0, &beta),
		stdErr: stdErr,
		ssr:    ssr,
		nobs:   r,
	}, nil
}

func illConditioned(err error) bool {
	var cond mat.Condition
	if errors.As(err, &cond) {
		slog.Warn("ill conditioned regression", "condition", float64(cond))
		return true
	}
	return false
}

// llf is the gaussian log likelihood of the fit.
func (f *olsFit) llf() float64 {
	n := float64(f.nobs)
	return -n / 2 * (math.Log(2*math.Pi) + math.Log(f.ssr/n) + 1)
}

func (f *olsFit) aic() float64 {
	return -2*f.llf() + 2*float64(len(f.coef))
}

func (f *olsFit) bic() float64 {
	return -2*f.llf() + float64(len(f.coef))*math.Log(float64(f.nobs))
}
