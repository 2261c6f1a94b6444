package deterministic

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aouyang1/go-datadives/feature"
	"github.com/aouyang1/go-datadives/timedataset"
)

// PiecewiseLinearTrend models a trend as connected linear segments with a change of
// slope allowed at every knot. Column trend(0) counts time steps starting at 1 and
// column trend(k) is a ramp that stays at 0 before knot k and rises by 1 per step from
// the first time point at or after the knot.
type PiecewiseLinearTrend struct {
	knots []time.Time
}

// NewPiecewiseLinearTrend keeps a sorted copy of the knots.
func NewPiecewiseLinearTrend(knots ...time.Time) *PiecewiseLinearTrend {
	sorted := make([]time.Time, len(knots))
	copy(sorted, knots)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})
	return &PiecewiseLinearTrend{knots: sorted}
}

// ParsePiecewiseLinearTrend parses the knots from date strings.
func ParsePiecewiseLinearTrend(knots ...string) (*PiecewiseLinearTrend, error) {
	parsed := make([]time.Time, 0, len(knots))
	for _, k := range knots {
		tPnt, err := timedataset.ParseTime(k)
		if err != nil {
			return nil, fmt.Errorf("invalid knot, %w", err)
		}
		parsed = append(parsed, tPnt)
	}
	return NewPiecewiseLinearTrend(parsed...), nil
}

// Knots returns a copy of the sorted knots.
func (p *PiecewiseLinearTrend) Knots() []time.Time {
	knots := make([]time.Time, len(p.knots))
	copy(knots, p.knots)
	return knots
}

func (p *PiecewiseLinearTrend) String() string {
	knots := make([]string, len(p.knots))
	for i, k := range p.knots {
		knots[i] = k.Format(time.RFC3339)
	}
	return fmt.Sprintf("PiecewiseLinearTrend(knots=[%s])", strings.Join(knots, ", "))
}

func (p *PiecewiseLinearTrend) Equal(other Term) bool {
	o, ok := other.(*PiecewiseLinearTrend)
	if !ok || o == nil {
		return false
	}
	return sameTimes(p.knots, o.knots)
}

// positions resolves every knot to its leftmost insertion position in the index.
func (p *PiecewiseLinearTrend) positions(index *timedataset.Index) []int {
	pos := make([]int, len(p.knots))
	for k, knot := range p.knots {
		pos[k] = index.SearchLeft(knot)
	}
	return pos
}

func (p *PiecewiseLinearTrend) InSample(index *timedataset.Index) (*Table, error) {
	if index == nil {
		return nil, ErrNilIndex
	}
	return p.table(index.Times(), 1, p.positions(index))
}

// OutOfSample continues the time step counter past the end of the index. Knots are
// still resolved against the historical index.
func (p *PiecewiseLinearTrend) OutOfSample(steps int, index, forecastIndex *timedataset.Index) (*Table, error) {
	fIdx, err := forecastIndexFor(steps, index, forecastIndex)
	if err != nil {
		return nil, err
	}
	return p.table(fIdx.Times(), index.Len()+1, p.positions(index))
}

func (p *PiecewiseLinearTrend) table(t []time.Time, firstStep int, positions []int) (*Table, error) {
	n := len(t)
	counter := make([]float64, n)
	for i := range counter {
		counter[i] = float64(firstStep + i)
	}

	tbl := newTable(t)
	if err := tbl.add(feature.NewTrend(0), counter); err != nil {
		return nil, err
	}
	for k, pos := range positions {
		ramp := make([]float64, n)
		for i, c := range counter {
			if v := c - float64(pos); v > 0 {
				ramp[i] = v
			}
		}
		if err := tbl.add(feature.NewTrend(k+1), ramp); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}
