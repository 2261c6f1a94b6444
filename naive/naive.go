// Package naive provides baseline forecasts that every fitted model should beat.
package naive

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aouyang1/go-datadives/timedataset"
)

var (
	ErrInvalidSteps   = errors.New("number of forecast steps must be positive")
	ErrInvalidPeriod  = errors.New("seasonal period must be positive and no longer than the series")
	ErrNoElapsedTime  = errors.New("series spans no time, drift is undefined")
	ErrUnknownMethod  = errors.New("unknown naive forecast method")
	ErrNilTimeDataset = errors.New("nil time dataset")
)

// Method names a baseline forecast.
type Method string

const (
	MethodNaive    Method = "naive"
	MethodSeasonal Method = "seasonal"
	MethodDrift    Method = "drift"
)

func ParseMethod(name string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(name)))
	switch m {
	case MethodNaive, MethodSeasonal, MethodDrift:
		return m, nil
	}
	return "", fmt.Errorf("%q, %w", name, ErrUnknownMethod)
}

// Forecast dispatches to the baseline named by method. period is only used by the
// seasonal method.
func Forecast(method Method, td *timedataset.TimeDataset, period, steps int) (*timedataset.TimeDataset, error) {
	switch method {
	case MethodNaive:
		return Naive(td, steps)
	case MethodSeasonal:
		return SeasonalNaive(td, period, steps)
	case MethodDrift:
		return Drift(td, steps)
	}
	return nil, fmt.Errorf("%q, %w", string(method), ErrUnknownMethod)
}

// Naive repeats the last observed value.
func Naive(td *timedataset.TimeDataset, steps int) (*timedataset.TimeDataset, error) {
	future, err := futureIndex(td, steps)
	if err != nil {
		return nil, err
	}
	last := td.Y[td.Len()-1]
	y := make([]float64, steps)
	for i := range y {
		y[i] = last
	}
	return timedataset.NewNamedDataset(td.Name, future.Times(), y)
}

// SeasonalNaive cycles through the last period observed values.
func SeasonalNaive(td *timedataset.TimeDataset, period, steps int) (*timedataset.TimeDataset, error) {
	if td == nil {
		return nil, ErrNilTimeDataset
	}
	if period < 1 || period > td.Len() {
		return nil, fmt.Errorf("got period %d for %d observations, %w", period, td.Len(), ErrInvalidPeriod)
	}
	future, err := futureIndex(td, steps)
	if err != nil {
		return nil, err
	}
	tail := td.Y[td.Len()-period:]
	y := make([]float64, steps)
	for i := range y {
		y[i] = tail[i%period]
	}
	return timedataset.NewNamedDataset(td.Name, future.Times(), y)
}

// Drift extends the line through the first and last observations. Elapsed time is
// measured in fractional days.
func Drift(td *timedataset.TimeDataset, steps int) (*timedataset.TimeDataset, error) {
	future, err := futureIndex(td, steps)
	if err != nil {
		return nil, err
	}
	n := td.Len()
	start := td.T[0]
	dx := days(td.T[n-1].Sub(start))
	if dx == 0 {
		return nil, ErrNoElapsedTime
	}
	b := td.Y[0]
	m := (td.Y[n-1] - b) / dx

	y := make([]float64, steps)
	for i, tPnt := range future.Times() {
		y[i] = m*days(tPnt.Sub(start)) + b
	}
	return timedataset.NewNamedDataset(td.Name, future.Times(), y)
}

func futureIndex(td *timedataset.TimeDataset, steps int) (*timedataset.Index, error) {
	if td == nil {
		return nil, ErrNilTimeDataset
	}
	if steps < 1 {
		return nil, fmt.Errorf("got %d steps, %w", steps, ErrInvalidSteps)
	}
	idx, err := td.Index()
	if err != nil {
		return nil, fmt.Errorf("unable to build index of series, %w", err)
	}
	return idx.Extend(steps)
}

func days(d time.Duration) float64 {
	return d.Hours() / 24.0
}
