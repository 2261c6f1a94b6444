package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// TrendStrength compares the variance of a decomposed trend component against the
// residual component. 0 is the weakest and 1 the strongest trend.
func TrendStrength(trend, resid []float64) (float64, error) {
	return componentStrength(trend, resid)
}

// SeasonalStrength compares the variance of a decomposed seasonal component against the
// residual component. 0 is the weakest and 1 the strongest seasonality.
func SeasonalStrength(seasonal, resid []float64) (float64, error) {
	return componentStrength(seasonal, resid)
}

func componentStrength(component, resid []float64) (float64, error) {
	c := dropNaN(component)
	r := dropNaN(resid)
	if len(c) < 2 || len(r) < 2 {
		return 0, fmt.Errorf("need at least 2 non missing values per component, %w", ErrInsufficientData)
	}

	varR := stat.Variance(r, nil)
	varC := stat.Variance(c, nil)
	if varR+varC == 0 {
		return 0, nil
	}
	return math.Max(1-varR/(varR+varC), 0.0), nil
}

// AdjustedR2 is the coefficient of determination penalized by the number of features
// of the model that produced yhat.
func AdjustedR2(y, yhat []float64, numFeatures int) (float64, error) {
	if len(y) != len(yhat) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(y), len(yhat), ErrResLenMismatch)
	}
	n := len(y)
	if n-numFeatures-1 <= 0 {
		return 0, fmt.Errorf("%d observations for %d features, %w", n, numFeatures, ErrInsufficientData)
	}
	r2 := stat.RSquaredFrom(yhat, y, nil)
	return 1 - (1-r2)*float64(n-1)/float64(n-numFeatures-1), nil
}

func dropNaN(x []float64) []float64 {
	res := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			res = append(res, v)
		}
	}
	return res
}
