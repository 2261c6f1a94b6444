package stats

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownRegression = errors.New("unknown deterministic regression")

// Regression selects the deterministic terms included in a unit root test regression.
type Regression string

const (
	RegressionNone          Regression = "n"
	RegressionConstant      Regression = "c"
	RegressionConstantTrend Regression = "ct"
)

func ParseRegression(name string) (Regression, error) {
	r := Regression(strings.ToLower(strings.TrimSpace(name)))
	if _, err := r.numTrend(); err != nil {
		return "", err
	}
	return r, nil
}

// numTrend is the count of deterministic regressors added for the regression.
func (r Regression) numTrend() (int, error) {
	switch r {
	case RegressionNone:
		return 0, nil
	case RegressionConstant:
		return 1, nil
	case RegressionConstantTrend:
		return 2, nil
	default:
		return 0, fmt.Errorf("%q, %w", string(r), ErrUnknownRegression)
	}
}
