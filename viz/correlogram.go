package viz

import (
	"fmt"
	"strconv"

	"github.com/aouyang1/go-datadives/stats"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Autocorrelations returns the acf and pacf correlograms of y for lags 1 to lags, each
// with the 1-alpha white noise confidence band.
func Autocorrelations(y []float64, lags int, alpha float64) (*charts.Bar, *charts.Bar, error) {
	acf, err := stats.ACF(y, lags)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to compute acf, %w", err)
	}
	pacf, err := stats.PACF(y, lags)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to compute pacf, %w", err)
	}
	band := stats.ConfidenceBand(len(y), alpha)
	return correlogram("acf", acf, band), correlogram("pacf", pacf, band), nil
}

// correlogram drops lag 0 and overlays the band as two flat lines.
func correlogram(name string, corr []float64, band float64) *charts.Bar {
	lags := make([]string, 0, len(corr))
	for k := 1; k < len(corr); k++ {
		lags = append(lags, strconv.Itoa(k))
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: name}),
		charts.WithXAxisOpts(opts.XAxis{Name: "lag"}),
		charts.WithYAxisOpts(opts.YAxis{Name: name}),
	)
	bar.SetXAxis(lags).AddSeries(name, barData(corr[1:]))

	upper := make([]float64, len(lags))
	lower := make([]float64, len(lags))
	for i := range lags {
		upper[i] = band
		lower[i] = -band
	}
	bandLine := charts.NewLine()
	bandLine.SetXAxis(lags).
		AddSeries("upper", lineData(upper)).
		AddSeries("lower", lineData(lower))
	bar.Overlap(bandLine)
	return bar
}
