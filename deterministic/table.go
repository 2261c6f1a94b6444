package deterministic

import (
	"errors"
	"fmt"
	"time"

	"github.com/aouyang1/go-datadives/feature"
	"github.com/goccy/go-json"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrDuplicateColumn  = errors.New("duplicate feature column")
	ErrTableLenMismatch = errors.New("tables have different time indexes")
)

// Table is a time indexed set of deterministic feature columns.
type Table struct {
	t   []time.Time
	set *feature.Set
}

func newTable(t []time.Time) *Table {
	tSeries := make([]time.Time, len(t))
	copy(tSeries, t)
	return &Table{t: tSeries, set: feature.NewSet()}
}

func (tbl *Table) add(f feature.Feature, data []float64) error {
	if _, exists := tbl.set.Get(f); exists {
		return fmt.Errorf("%q, %w", f.String(), ErrDuplicateColumn)
	}
	tbl.set.Set(f, data)
	return nil
}

// Len returns the number of rows.
func (tbl *Table) Len() int {
	if tbl == nil {
		return 0
	}
	return len(tbl.t)
}

// Times returns a copy of the row time points.
func (tbl *Table) Times() []time.Time {
	t := make([]time.Time, len(tbl.t))
	copy(t, tbl.t)
	return t
}

// Features returns the column labels in order.
func (tbl *Table) Features() []feature.Feature {
	return tbl.set.Labels()
}

// Columns returns the column names in order.
func (tbl *Table) Columns() []string {
	labels := tbl.set.Labels()
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.String()
	}
	return names
}

// Column returns a copy of the named column.
func (tbl *Table) Column(name string) ([]float64, bool) {
	f, err := feature.Parse(name)
	if err != nil {
		return nil, false
	}
	vals, exists := tbl.set.Get(f)
	if !exists {
		return nil, false
	}
	res := make([]float64, len(vals))
	copy(res, vals)
	return res, true
}

// Matrix returns the design matrix with one row per time point and one column per
// feature, in column order.
func (tbl *Table) Matrix() *mat.Dense {
	return tbl.set.Matrix(false)
}

// Concat joins the columns of tables sharing the same time index.
func (tbl *Table) Concat(others ...*Table) (*Table, error) {
	res := newTable(tbl.t)
	res.set = tbl.set.Copy()
	for _, other := range others {
		if !sameTimes(tbl.t, other.t) {
			return nil, ErrTableLenMismatch
		}
		for _, f := range other.set.Labels() {
			vals, _ := other.set.Get(f)
			if err := res.add(f, vals); err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

func (tbl *Table) dropZeroColumns() *Table {
	res := newTable(tbl.t)
	res.set = tbl.set.Copy()
	res.set.RemoveZeroOnlyFeatures()
	return res
}

// restrict keeps the columns of tbl also found in ref.
func (tbl *Table) restrict(ref *Table) *Table {
	res := newTable(tbl.t)
	for _, f := range tbl.set.Labels() {
		if _, exists := ref.set.Index(f); !exists {
			continue
		}
		vals, _ := tbl.set.Get(f)
		res.set.Set(f, vals)
	}
	return res
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

type tableJSON struct {
	Time    []time.Time `json:"time"`
	Columns []string    `json:"columns"`
	Data    [][]float64 `json:"data"`
}

func (tbl *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(tableJSON{
		Time:    tbl.t,
		Columns: tbl.Columns(),
		Data:    tbl.set.MatrixSlice(false),
	})
}

func (tbl *Table) UnmarshalJSON(data []byte) error {
	var raw tableJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Columns) != len(raw.Data) {
		return fmt.Errorf("%d columns for %d data columns, %w", len(raw.Columns), len(raw.Data), ErrTableLenMismatch)
	}

	res := newTable(raw.Time)
	for j, name := range raw.Columns {
		f, err := feature.Parse(name)
		if err != nil {
			return err
		}
		if len(raw.Data[j]) != len(raw.Time) {
			return fmt.Errorf("column %q has %d rows, %w", name, len(raw.Data[j]), ErrTableLenMismatch)
		}
		if err := res.add(f, raw.Data[j]); err != nil {
			return err
		}
	}
	*tbl = *res
	return nil
}
