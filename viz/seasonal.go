package viz

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/aouyang1/go-datadives/timedataset"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// SeasonalPeriods lays every seasonal period of the series on top of each other. The
// period attribute groups the points, e.g. year, and the position attribute places them
// on the x axis, e.g. month. Points sharing a period and position are averaged.
func SeasonalPeriods(td *timedataset.TimeDataset, period, position timedataset.Attribute) (*charts.Line, error) {
	if td == nil || td.Len() == 0 {
		return nil, ErrNoSeries
	}
	for _, attr := range []timedataset.Attribute{period, position} {
		if !attr.Valid() {
			return nil, fmt.Errorf("%q, %w", attr, timedataset.ErrUnknownAttribute)
		}
	}

	type cell struct {
		sum float64
		cnt int
	}
	groups := make(map[int]map[int]*cell)
	xSet := make(map[int]struct{})
	for i, tPnt := range td.T {
		if math.IsNaN(td.Y[i]) {
			continue
		}
		g, x := period.Extract(tPnt), position.Extract(tPnt)
		if groups[g] == nil {
			groups[g] = make(map[int]*cell)
		}
		c, exists := groups[g][x]
		if !exists {
			c = &cell{}
			groups[g][x] = c
		}
		c.sum += td.Y[i]
		c.cnt++
		xSet[x] = struct{}{}
	}
	if len(groups) == 0 {
		return nil, ErrNotEnoughPoints
	}

	xs := sortedKeys(xSet)
	xLabels := make([]string, len(xs))
	for i, x := range xs {
		xLabels[i] = strconv.Itoa(x)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s by %s", td.Name, period)}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{Name: string(position)}),
		charts.WithYAxisOpts(opts.YAxis{Name: td.Name}),
	)
	line.SetXAxis(xLabels)

	gs := make([]int, 0, len(groups))
	for g := range groups {
		gs = append(gs, g)
	}
	sort.Ints(gs)

	for _, g := range gs {
		y := make([]float64, len(xs))
		for i, x := range xs {
			c, exists := groups[g][x]
			if !exists {
				y[i] = math.NaN()
				continue
			}
			y[i] = c.sum / float64(c.cnt)
		}
		line.AddSeries(strconv.Itoa(g), lineData(y))
	}
	return line, nil
}

func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
