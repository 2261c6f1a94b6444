package timedataset

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrUnknownFillMethod = errors.New("unknown fill method")

// AggFunc reduces the values falling into one resampling bin. It is only called with
// a non empty slice of non NaN values.
type AggFunc func(vals []float64) float64

func Mean(vals []float64) float64 {
	return stat.Mean(vals, nil)
}

func Sum(vals []float64) float64 {
	return floats.Sum(vals)
}

func Min(vals []float64) float64 {
	return floats.Min(vals)
}

func Max(vals []float64) float64 {
	return floats.Max(vals)
}

func Last(vals []float64) float64 {
	return vals[len(vals)-1]
}

// Mode returns the most frequent value, the smallest one on ties.
func Mode(vals []float64) float64 {
	counts := make(map[float64]int, len(vals))
	for _, v := range vals {
		counts[v]++
	}
	mode := math.NaN()
	var maxCnt int
	for v, cnt := range counts {
		if cnt > maxCnt || (cnt == maxCnt && v < mode) {
			mode = v
			maxCnt = cnt
		}
	}
	return mode
}

// Groups assigns every row of the frame to a bin of the given frequency. It returns the
// regular index of bin start times spanning the first to the last row and, per bin, the
// row positions falling into it. Bins without any rows are kept empty.
func (f *Frame) Groups(freq Freq) (*Index, [][]int, error) {
	if f.Len() == 0 {
		return nil, nil, ErrNoTrainingData
	}
	if freq.IsZero() {
		return nil, nil, fmt.Errorf("resampling requires a frequency, %w", ErrUnknownFreq)
	}

	start := freq.Truncate(f.T[0])
	end := freq.Truncate(f.T[len(f.T)-1])
	var bins []time.Time
	for b := start; !b.After(end); b = freq.Add(b, 1) {
		bins = append(bins, b)
	}

	groups := make([][]int, len(bins))
	b := 0
	for i, tPnt := range f.T {
		for b < len(bins)-1 && !bins[b+1].After(tPnt) {
			b++
		}
		groups[b] = append(groups[b], i)
	}

	idx, err := NewIndex(bins, freq)
	if err != nil {
		return nil, nil, err
	}
	return idx, groups, nil
}

// Resample bins the frame into the given frequency, reducing every column with agg.
// Columns named in perColumn use their own aggregation instead. NaN values are ignored
// and bins without values become NaN.
func (f *Frame) Resample(freq Freq, agg AggFunc, perColumn map[string]AggFunc) (*Frame, error) {
	idx, groups, err := f.Groups(freq)
	if err != nil {
		return nil, err
	}

	data := make([][]float64, len(f.Columns))
	buf := make([]float64, 0, len(f.T))
	for j, col := range f.Columns {
		colAgg := agg
		if custom, exists := perColumn[col]; exists {
			colAgg = custom
		}

		vals := make([]float64, len(groups))
		for b, rows := range groups {
			buf = buf[:0]
			for _, i := range rows {
				if v := f.Data[j][i]; !math.IsNaN(v) {
					buf = append(buf, v)
				}
			}
			if len(buf) == 0 {
				vals[b] = math.NaN()
				continue
			}
			vals[b] = colAgg(buf)
		}
		data[j] = vals
	}
	return NewFrame(idx.t, f.Columns, data)
}

// FillMethod names how missing values are filled after resampling.
type FillMethod string

const (
	FillForward     FillMethod = "forward"
	FillInterpolate FillMethod = "interpolate"
)

func ParseFillMethod(name string) (FillMethod, error) {
	switch m := FillMethod(strings.ToLower(strings.TrimSpace(name))); m {
	case FillForward, FillInterpolate:
		return m, nil
	case "ffill":
		return FillForward, nil
	}
	return "", fmt.Errorf("%q, %w", name, ErrUnknownFillMethod)
}

// Fill returns a copy of the frame with NaN values filled. Forward fill carries the last
// observed value forward. Interpolation is linear in elapsed time between the
// surrounding observations and carries the last observation past the end. Leading NaN
// values are left as is by both methods. With no columns named, every column is filled.
func (f *Frame) Fill(method FillMethod, columns ...string) (*Frame, error) {
	var fill func(t []time.Time, vals []float64)
	switch method {
	case FillForward:
		fill = forwardFill
	case FillInterpolate:
		fill = timeInterpolate
	default:
		return nil, fmt.Errorf("%q, %w", method, ErrUnknownFillMethod)
	}

	if len(columns) == 0 {
		columns = f.Columns
	}
	res := f.Copy()
	for _, col := range columns {
		j := res.ColumnIndex(col)
		if j < 0 {
			return nil, fmt.Errorf("%q, %w", col, ErrUnknownColumn)
		}
		fill(res.T, res.Data[j])
	}
	return res, nil
}

func forwardFill(_ []time.Time, vals []float64) {
	last := math.NaN()
	for i, v := range vals {
		if math.IsNaN(v) {
			vals[i] = last
			continue
		}
		last = v
	}
}

func timeInterpolate(t []time.Time, vals []float64) {
	prev := -1
	for i, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		if prev >= 0 && i-prev > 1 {
			span := float64(t[i].Sub(t[prev]))
			for k := prev + 1; k < i; k++ {
				frac := float64(t[k].Sub(t[prev])) / span
				vals[k] = vals[prev] + frac*(v-vals[prev])
			}
		}
		prev = i
	}
	if prev < 0 {
		return
	}
	for k := prev + 1; k < len(vals); k++ {
		vals[k] = vals[prev]
	}
}

// DropNaRows returns a copy of the frame without the rows holding a NaN in any of the
// subset columns. With no subset every column is checked.
func (f *Frame) DropNaRows(subset ...string) (*Frame, error) {
	if len(subset) == 0 {
		subset = f.Columns
	}
	check := make([]int, 0, len(subset))
	for _, col := range subset {
		j := f.ColumnIndex(col)
		if j < 0 {
			return nil, fmt.Errorf("%q, %w", col, ErrUnknownColumn)
		}
		check = append(check, j)
	}

	keep := make([]int, 0, len(f.T))
	for i := range f.T {
		missing := false
		for _, j := range check {
			if math.IsNaN(f.Data[j][i]) {
				missing = true
				break
			}
		}
		if !missing {
			keep = append(keep, i)
		}
	}
	return f.take(keep), nil
}

// take keeps the rows at the given sorted positions, time points included.
func (f *Frame) take(rows []int) *Frame {
	res := &Frame{
		T:       make([]time.Time, len(rows)),
		Columns: make([]string, len(f.Columns)),
		Data:    make([][]float64, len(f.Data)),
	}
	copy(res.Columns, f.Columns)
	for i, r := range rows {
		res.T[i] = f.T[r]
	}
	for j, col := range f.Data {
		vals := make([]float64, len(rows))
		for i, r := range rows {
			vals[i] = col[r]
		}
		res.Data[j] = vals
	}
	return res
}

// SortByTime orders unsorted rows by time. Rows sharing a time point keep their
// relative order.
func SortByTime(t []time.Time, columns [][]float64) {
	order := make([]int, len(t))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return t[order[a]].Before(t[order[b]])
	})

	tSorted := make([]time.Time, len(t))
	for i, o := range order {
		tSorted[i] = t[o]
	}
	copy(t, tSorted)

	buf := make([]float64, len(t))
	for _, col := range columns {
		for i, o := range order {
			buf[i] = col[o]
		}
		copy(col, buf)
	}
}
