package timedataset

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrNoTrainingData     = errors.New("no training data")
	ErrNonMontonic        = errors.New("time feature is not monotonic")
	ErrDatasetLenMismatch = errors.New("time feature has a different length than observations")
	ErrCannotInferFreq    = errors.New("cannot infer frequency from time feature")
	ErrIndexOutOfBounds   = errors.New("index is out of bounds")
)

// TimeDataset represents a time series storing a slice of time points and values.
// Both must be of the same length.
type TimeDataset struct {
	Name string      `json:"name"`
	T    []time.Time `json:"time"`
	Y    []float64   `json:"values"`
}

// NewUnivariateDataset returns an instance of a TimeDataset given a time and value slice.
func NewUnivariateDataset(t []time.Time, y []float64) (*TimeDataset, error) {
	if len(y) == 0 {
		return nil, ErrNoTrainingData
	}
	if len(t) != len(y) {
		return nil, fmt.Errorf(
			"time feature has length of %d, but values has a length of %d, %w",
			len(t), len(y), ErrDatasetLenMismatch,
		)
	}
	if err := validateMonotonic(t); err != nil {
		return nil, err
	}

	tSeries := make([]time.Time, len(t))
	ySeries := make([]float64, len(t))
	copy(tSeries, t)
	copy(ySeries, y)
	td := &TimeDataset{
		T: tSeries,
		Y: ySeries,
	}

	return td, nil
}

// NewNamedDataset is NewUnivariateDataset with a series name attached.
func NewNamedDataset(name string, t []time.Time, y []float64) (*TimeDataset, error) {
	td, err := NewUnivariateDataset(t, y)
	if err != nil {
		return nil, err
	}
	td.Name = name
	return td, nil
}

func validateMonotonic(t []time.Time) error {
	for i := 1; i < len(t); i++ {
		if !t[i].After(t[i-1]) {
			return fmt.Errorf("non-monotonic at %d, %w", i, ErrNonMontonic)
		}
	}
	return nil
}

// Len returns the number of observations. A nil dataset has no observations.
func (td *TimeDataset) Len() int {
	if td == nil {
		return 0
	}
	return len(td.Y)
}

func (td *TimeDataset) Copy() *TimeDataset {
	tSeries := make([]time.Time, len(td.T))
	ySeries := make([]float64, len(td.T))
	copy(tSeries, td.T)
	copy(ySeries, td.Y)
	return &TimeDataset{
		Name: td.Name,
		T:    tSeries,
		Y:    ySeries,
	}
}

// Gather builds a new dataset whose i-th value is the value at position idx[i] of the
// receiver. The time points and name are kept as is so only the values move.
func (td *TimeDataset) Gather(idx []int) *TimeDataset {
	tSeries := make([]time.Time, len(td.T))
	copy(tSeries, td.T)

	ySeries := make([]float64, len(idx))
	for i, j := range idx {
		ySeries[i] = td.Y[j]
	}
	return &TimeDataset{
		Name: td.Name,
		T:    tSeries,
		Y:    ySeries,
	}
}

// DropNan returns a copy of the dataset without the observations that are NaN.
func (td *TimeDataset) DropNan() *TimeDataset {
	if td == nil {
		return nil
	}
	res := &TimeDataset{
		Name: td.Name,
		T:    make([]time.Time, 0, len(td.T)),
		Y:    make([]float64, 0, len(td.Y)),
	}
	for i := 0; i < len(td.Y); i++ {
		if math.IsNaN(td.Y[i]) {
			continue
		}
		res.T = append(res.T, td.T[i])
		res.Y = append(res.Y, td.Y[i])
	}
	return res
}

// Index returns the dataset time points as an Index with an inferred frequency.
func (td *TimeDataset) Index() (*Index, error) {
	return InferIndex(td.T)
}

// Frame converts the dataset into a single column frame named after the series.
func (td *TimeDataset) Frame() (*Frame, error) {
	name := td.Name
	if name == "" {
		name = "y"
	}
	return NewFrame(td.T, []string{name}, [][]float64{td.Y})
}
