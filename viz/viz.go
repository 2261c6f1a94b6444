// Package viz builds go-echarts diagnostic charts for time series, autocorrelations,
// residuals and bootstrap replicates.
package viz

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/aouyang1/go-datadives/timedataset"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var (
	ErrNoSeries        = errors.New("no series to plot")
	ErrIndexMismatch   = errors.New("series do not share a time index")
	ErrNotEnoughPoints = errors.New("not enough non missing points to plot")
)

// missing is how echarts expects a gap in a series.
const missing = "-"

func lineData(y []float64) []opts.LineData {
	data := make([]opts.LineData, len(y))
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			data[i] = opts.LineData{Value: missing}
			continue
		}
		data[i] = opts.LineData{Value: v}
	}
	return data
}

func barData(y []float64) []opts.BarData {
	data := make([]opts.BarData, len(y))
	for i, v := range y {
		data[i] = opts.BarData{Value: v}
	}
	return data
}

func newLine(title, yName string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	)
	return line
}

func sameTimes(a, b []time.Time) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// TimeSeries overlays every series on one chart. All series must share the same
// timestamps.
func TimeSeries(title string, series ...*timedataset.TimeDataset) (*charts.Line, error) {
	if len(series) == 0 {
		return nil, ErrNoSeries
	}
	for i, td := range series {
		if td == nil {
			return nil, fmt.Errorf("series %d is nil, %w", i, ErrNoSeries)
		}
		if !sameTimes(series[0].T, td.T) {
			return nil, fmt.Errorf("series %q, %w", td.Name, ErrIndexMismatch)
		}
	}

	line := newLine(title, "")
	line.SetXAxis(series[0].T)
	for i, td := range series {
		line.AddSeries(seriesName(td, i), lineData(td.Y))
	}
	return line, nil
}

// TimeSeriesPanels draws each series on its own chart, labeling the y axis with the
// series name.
func TimeSeriesPanels(series ...*timedataset.TimeDataset) ([]*charts.Line, error) {
	if len(series) == 0 {
		return nil, ErrNoSeries
	}
	lines := make([]*charts.Line, 0, len(series))
	for i, td := range series {
		if td == nil {
			return nil, fmt.Errorf("series %d is nil, %w", i, ErrNoSeries)
		}
		name := seriesName(td, i)
		line := newLine(name, name)
		line.SetXAxis(td.T).AddSeries(name, lineData(td.Y))
		lines = append(lines, line)
	}
	return lines, nil
}

// Frame overlays every column of a frame.
func Frame(title string, f *timedataset.Frame) (*charts.Line, error) {
	if f == nil || f.Width() == 0 {
		return nil, ErrNoSeries
	}
	line := newLine(title, "")
	line.SetXAxis(f.T)
	for i, name := range f.Columns {
		line.AddSeries(name, lineData(f.Data[i]))
	}
	return line, nil
}

func seriesName(td *timedataset.TimeDataset, i int) string {
	if td.Name != "" {
		return td.Name
	}
	return fmt.Sprintf("series%d", i)
}

// Render writes all charts to a single html page.
func Render(w io.Writer, chartList ...components.Charter) error {
	if len(chartList) == 0 {
		return ErrNoSeries
	}
	page := components.NewPage()
	page.AddCharts(chartList...)
	return page.Render(w)
}

// RenderFile writes all charts to an html page at path.
func RenderFile(path string, chartList ...components.Charter) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Render(file, chartList...); err != nil {
		return errors.Join(fmt.Errorf("unable to render %s, %w", path, err), file.Close())
	}
	return file.Close()
}
