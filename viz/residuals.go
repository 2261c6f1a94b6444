package viz

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/aouyang1/go-datadives/timedataset"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ResidualOptions configures the residual diagnostic charts.
type ResidualOptions struct {
	Lags  int     `json:"lags"`
	Alpha float64 `json:"alpha"`
	Bins  int     `json:"bins"`
}

func NewDefaultResidualOptions() *ResidualOptions {
	return &ResidualOptions{
		Lags:  40,
		Alpha: 0.05,
		Bins:  10,
	}
}

// ResidualDiagnostics returns a time plot of the residuals, their acf correlogram and
// their density histogram against the N(0, sigma) pdf.
func ResidualDiagnostics(residuals *timedataset.TimeDataset, opt *ResidualOptions) (*charts.Line, *charts.Bar, *charts.Bar, error) {
	if residuals == nil || residuals.Len() == 0 {
		return nil, nil, nil, ErrNoSeries
	}
	if opt == nil {
		opt = NewDefaultResidualOptions()
	}

	timePlot := newLine("residuals", "residuals")
	timePlot.SetXAxis(residuals.T).AddSeries("residuals", lineData(residuals.Y))

	y := residuals.DropNan().Y
	if len(y) < 2 {
		return nil, nil, nil, fmt.Errorf("got %d residuals, %w", len(y), ErrNotEnoughPoints)
	}

	acf, _, err := Autocorrelations(y, opt.Lags, opt.Alpha)
	if err != nil {
		return nil, nil, nil, err
	}

	hist, err := Histogram(y, opt.Bins)
	if err != nil {
		return nil, nil, nil, err
	}
	return timePlot, acf, hist, nil
}

// Histogram plots the density of y over evenly spaced bins together with the pdf of a
// zero mean normal with the standard deviation of y.
func Histogram(y []float64, bins int) (*charts.Bar, error) {
	if bins < 1 {
		return nil, fmt.Errorf("got %d bins, %w", bins, ErrNotEnoughPoints)
	}
	sorted := make([]float64, 0, len(y))
	for _, v := range y {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	if len(sorted) < 2 {
		return nil, fmt.Errorf("got %d values, %w", len(sorted), ErrNotEnoughPoints)
	}
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	// the last divider is nudged so the maximum lands in the final bin
	dividers := make([]float64, bins+1)
	floats.Span(dividers, lo, math.Nextafter(hi, math.Inf(1)))
	counts := stat.Histogram(nil, dividers, sorted, nil)

	width := dividers[1] - dividers[0]
	total := float64(len(sorted))
	norm := distuv.Normal{Mu: 0, Sigma: stat.StdDev(sorted, nil)}

	labels := make([]string, bins)
	density := make([]float64, bins)
	pdf := make([]float64, bins)
	for i := range counts {
		center := dividers[i] + width/2
		labels[i] = strconv.FormatFloat(center, 'g', 4, 64)
		density[i] = counts[i] / (total * width)
		if norm.Sigma > 0 {
			pdf[i] = norm.Prob(center)
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "residual density"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "residual"}),
	)
	bar.SetXAxis(labels).AddSeries("residuals", barData(density))

	pdfLine := charts.NewLine()
	pdfLine.SetXAxis(labels).AddSeries("N(0, sigma)", lineData(pdf))
	bar.Overlap(pdfLine)
	return bar, nil
}
