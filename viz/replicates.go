package viz

import (
	"fmt"

	"github.com/aouyang1/go-datadives/bootstrap"
	"github.com/aouyang1/go-datadives/timedataset"
	"github.com/go-echarts/go-echarts/v2/charts"
)

// Replicates plots the original series with the median and the [lower, upper] quantile
// envelope of its bootstrap replicates.
func Replicates(original *timedataset.TimeDataset, replicates *timedataset.Frame, lower, upper float64) (*charts.Line, error) {
	if original == nil || replicates == nil || replicates.Width() == 0 {
		return nil, ErrNoSeries
	}
	if !sameTimes(original.T, replicates.T) {
		return nil, ErrIndexMismatch
	}

	line := newLine(fmt.Sprintf("%s bootstrap replicates", original.Name), original.Name)
	line.SetXAxis(original.T).
		AddSeries(seriesName(original, 0), lineData(original.Y)).
		AddSeries("median", lineData(bootstrap.Quantiles(replicates, 0.5))).
		AddSeries(fmt.Sprintf("q%g", lower), lineData(bootstrap.Quantiles(replicates, lower))).
		AddSeries(fmt.Sprintf("q%g", upper), lineData(bootstrap.Quantiles(replicates, upper)))
	return line, nil
}
