package timedataset

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrDuplicateColumn   = errors.New("duplicate column name")
	ErrUnknownColumn     = errors.New("unknown column")
	ErrColumnLenMismatch = errors.New("number of column names does not match number of columns")
)

// Frame is a two dimensional time series: a shared time index and ordered, uniquely
// named float64 columns. Data is stored column major so Data[j] holds the values of
// Columns[j].
type Frame struct {
	T       []time.Time `json:"time"`
	Columns []string    `json:"columns"`
	Data    [][]float64 `json:"data"`
}

// NewFrame copies the inputs into a new frame after validating that the time points are
// strictly increasing and every column has one value per time point.
func NewFrame(t []time.Time, columns []string, data [][]float64) (*Frame, error) {
	if len(columns) != len(data) {
		return nil, fmt.Errorf(
			"%d column names for %d columns, %w", len(columns), len(data), ErrColumnLenMismatch,
		)
	}
	if err := validateMonotonic(t); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(columns))
	for j, col := range columns {
		if _, exists := seen[col]; exists {
			return nil, fmt.Errorf("%q, %w", col, ErrDuplicateColumn)
		}
		seen[col] = struct{}{}

		if len(data[j]) != len(t) {
			return nil, fmt.Errorf(
				"column %q has length of %d, but time feature has a length of %d, %w",
				col, len(data[j]), len(t), ErrDatasetLenMismatch,
			)
		}
	}

	f := &Frame{
		T:       make([]time.Time, len(t)),
		Columns: make([]string, len(columns)),
		Data:    make([][]float64, len(data)),
	}
	copy(f.T, t)
	copy(f.Columns, columns)
	for j, col := range data {
		f.Data[j] = make([]float64, len(col))
		copy(f.Data[j], col)
	}
	return f, nil
}

// Len returns the number of rows. A nil frame has no rows.
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return len(f.T)
}

// Width returns the number of columns.
func (f *Frame) Width() int {
	if f == nil {
		return 0
	}
	return len(f.Columns)
}

func (f *Frame) ColumnIndex(name string) int {
	for j, col := range f.Columns {
		if col == name {
			return j
		}
	}
	return -1
}

// Column returns a copy of the named column values.
func (f *Frame) Column(name string) ([]float64, error) {
	j := f.ColumnIndex(name)
	if j < 0 {
		return nil, fmt.Errorf("%q, %w", name, ErrUnknownColumn)
	}
	vals := make([]float64, len(f.Data[j]))
	copy(vals, f.Data[j])
	return vals, nil
}

// Series extracts a named column as a univariate dataset.
func (f *Frame) Series(name string) (*TimeDataset, error) {
	vals, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	tSeries := make([]time.Time, len(f.T))
	copy(tSeries, f.T)
	return &TimeDataset{Name: name, T: tSeries, Y: vals}, nil
}

// Select returns a new frame holding only the named columns in the requested order.
func (f *Frame) Select(names ...string) (*Frame, error) {
	data := make([][]float64, 0, len(names))
	for _, name := range names {
		j := f.ColumnIndex(name)
		if j < 0 {
			return nil, fmt.Errorf("%q, %w", name, ErrUnknownColumn)
		}
		data = append(data, f.Data[j])
	}
	return NewFrame(f.T, names, data)
}

// WithColumn returns a copy of the frame with an extra column appended, or the existing
// column of the same name replaced.
func (f *Frame) WithColumn(name string, vals []float64) (*Frame, error) {
	if len(vals) != len(f.T) {
		return nil, fmt.Errorf(
			"column %q has length of %d, but time feature has a length of %d, %w",
			name, len(vals), len(f.T), ErrDatasetLenMismatch,
		)
	}
	res := f.Copy()
	col := make([]float64, len(vals))
	copy(col, vals)
	if j := res.ColumnIndex(name); j >= 0 {
		res.Data[j] = col
		return res, nil
	}
	res.Columns = append(res.Columns, name)
	res.Data = append(res.Data, col)
	return res, nil
}

// Drop returns a copy of the frame without the named columns. Unknown names are
// ignored.
func (f *Frame) Drop(names ...string) *Frame {
	drop := make(map[string]struct{}, len(names))
	for _, name := range names {
		drop[name] = struct{}{}
	}

	res := &Frame{T: make([]time.Time, len(f.T))}
	copy(res.T, f.T)
	for j, col := range f.Columns {
		if _, exists := drop[col]; exists {
			continue
		}
		vals := make([]float64, len(f.Data[j]))
		copy(vals, f.Data[j])
		res.Columns = append(res.Columns, col)
		res.Data = append(res.Data, vals)
	}
	return res
}

// Gather builds a new frame whose i-th row holds the values of row idx[i] of the
// receiver. The time points and column names are kept as is so only the values move.
func (f *Frame) Gather(idx []int) *Frame {
	res := &Frame{
		T:       make([]time.Time, len(f.T)),
		Columns: make([]string, len(f.Columns)),
		Data:    make([][]float64, len(f.Data)),
	}
	copy(res.T, f.T)
	copy(res.Columns, f.Columns)
	for j, col := range f.Data {
		vals := make([]float64, len(idx))
		for i, k := range idx {
			vals[i] = col[k]
		}
		res.Data[j] = vals
	}
	return res
}

// Rows returns a new frame restricted to rows in positions [start, end).
func (f *Frame) Rows(start, end int) (*Frame, error) {
	if start < 0 || end > len(f.T) || start > end {
		return nil, fmt.Errorf("rows [%d, %d) of %d, %w", start, end, len(f.T), ErrIndexOutOfBounds)
	}
	data := make([][]float64, len(f.Data))
	for j, col := range f.Data {
		data[j] = col[start:end]
	}
	return NewFrame(f.T[start:end], f.Columns, data)
}

func (f *Frame) Copy() *Frame {
	res := &Frame{
		T:       make([]time.Time, len(f.T)),
		Columns: make([]string, len(f.Columns)),
		Data:    make([][]float64, len(f.Data)),
	}
	copy(res.T, f.T)
	copy(res.Columns, f.Columns)
	for j, col := range f.Data {
		res.Data[j] = make([]float64, len(col))
		copy(res.Data[j], col)
	}
	return res
}

// Index returns the frame time points as an Index with an inferred frequency.
func (f *Frame) Index() (*Index, error) {
	return InferIndex(f.T)
}
