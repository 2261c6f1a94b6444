package naive

import (
	"fmt"
	"math"

	"github.com/aouyang1/go-datadives/timedataset"
)

// Residuals returns the one step ahead in-sample residuals of a baseline, y[t] minus the
// forecast made from the observations before t. Leading points without enough history
// are NaN.
func Residuals(method Method, td *timedataset.TimeDataset, period int) (*timedataset.TimeDataset, error) {
	if td == nil {
		return nil, ErrNilTimeDataset
	}
	n := td.Len()

	lag := 1
	var slope float64
	switch method {
	case MethodNaive:
	case MethodSeasonal:
		if period < 1 || period > n {
			return nil, fmt.Errorf("got period %d for %d observations, %w", period, n, ErrInvalidPeriod)
		}
		lag = period
	case MethodDrift:
		dx := days(td.T[n-1].Sub(td.T[0]))
		if dx == 0 {
			return nil, ErrNoElapsedTime
		}
		slope = (td.Y[n-1] - td.Y[0]) / dx
	default:
		return nil, fmt.Errorf("%q, %w", string(method), ErrUnknownMethod)
	}

	resid := make([]float64, n)
	for i := range resid {
		if i < lag {
			resid[i] = math.NaN()
			continue
		}
		fitted := td.Y[i-lag] + slope*days(td.T[i].Sub(td.T[i-lag]))
		resid[i] = td.Y[i] - fitted
	}
	return timedataset.NewNamedDataset(td.Name, td.T, resid)
}
