package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ACF returns the autocorrelation for lags 0 to maxLag. maxLag is capped to len(y)-1.
func ACF(y []float64, maxLag int) ([]float64, error) {
	n := len(y)
	if n < 2 {
		return nil, fmt.Errorf("got %d observations, %w", n, ErrInsufficientData)
	}
	if hasNaN(y) {
		return nil, ErrMissingValues
	}
	maxLag = min(maxLag, n-1)
	if maxLag < 0 {
		return nil, fmt.Errorf("got max lag %d, %w", maxLag, ErrInvalidLags)
	}

	mean := stat.Mean(y, nil)
	dev := make([]float64, n)
	for i, v := range y {
		dev[i] = v - mean
	}
	variance := autocov(dev, 0)
	if variance == 0 {
		return nil, fmt.Errorf("constant series, %w", ErrInsufficientData)
	}

	acf := make([]float64, maxLag+1)
	for k := range acf {
		acf[k] = autocov(dev, k) / variance
	}
	return acf, nil
}

// PACF returns the partial autocorrelation for lags 0 to maxLag from the Durbin-Levinson
// recursion over the autocorrelations.
func PACF(y []float64, maxLag int) ([]float64, error) {
	acf, err := ACF(y, maxLag)
	if err != nil {
		return nil, err
	}
	maxLag = len(acf) - 1

	pacf := make([]float64, maxLag+1)
	pacf[0] = 1.0
	if maxLag == 0 {
		return pacf, nil
	}

	prev := make([]float64, maxLag+1)
	curr := make([]float64, maxLag+1)
	prev[1] = acf[1]
	pacf[1] = acf[1]
	for k := 2; k <= maxLag; k++ {
		num := acf[k]
		den := 1.0
		for j := 1; j < k; j++ {
			num -= prev[j] * acf[k-j]
			den -= prev[j] * acf[j]
		}
		if den == 0 {
			break
		}
		curr[k] = num / den
		for j := 1; j < k; j++ {
			curr[j] = prev[j] - curr[k]*prev[k-j]
		}
		pacf[k] = curr[k]
		prev, curr = curr, prev
	}
	return pacf, nil
}

// ConfidenceBand is the half width of the two sided 1-alpha band around zero for the
// autocorrelations of n observations of white noise.
func ConfidenceBand(n int, alpha float64) float64 {
	if n < 1 {
		return math.NaN()
	}
	return distuv.UnitNormal.Quantile(1-alpha/2) / math.Sqrt(float64(n))
}
