package feature

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Set holds the data of each feature keyed by the string representation of the feature.
// Features keep the order in which they were first set so that the matrix columns line
// up with the labels.
type Set struct {
	m      int
	set    map[string][]float64
	labels []Feature
}

func NewSet() *Set {
	return &Set{
		set:    make(map[string][]float64),
		labels: make([]Feature, 0),
	}
}

// Len returns the number of observations of each feature.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.m
}

// Width returns the number of features.
func (s *Set) Width() int {
	if s == nil {
		return 0
	}
	return len(s.labels)
}

// Set stores the feature data. Existing features are overwritten in place. Feature data
// shorter than the set is zero padded and longer data pads every other feature.
func (s *Set) Set(f Feature, data []float64) *Set {
	if s.set == nil {
		s.set = make(map[string][]float64)
	}

	if len(data) > s.m {
		for label, vals := range s.set {
			s.set[label] = pad(vals, len(data))
		}
		s.m = len(data)
	}

	label := f.String()
	if _, exists := s.set[label]; !exists {
		s.labels = append(s.labels, f)
	}
	s.set[label] = pad(data, s.m)
	return s
}

func pad(data []float64, m int) []float64 {
	vals := make([]float64, m)
	copy(vals, data)
	return vals
}

// Get returns the feature data and whether the feature exists.
func (s *Set) Get(f Feature) ([]float64, bool) {
	if s == nil {
		return nil, false
	}
	vals, exists := s.set[f.String()]
	return vals, exists
}

// Del removes a feature from the set.
func (s *Set) Del(f Feature) *Set {
	label := f.String()
	if _, exists := s.set[label]; !exists {
		return s
	}
	delete(s.set, label)

	labels := make([]Feature, 0, len(s.labels))
	for _, l := range s.labels {
		if l.String() != label {
			labels = append(labels, l)
		}
	}
	s.labels = labels
	if len(labels) == 0 {
		s.m = 0
	}
	return s
}

// Update sets every feature of other into the set, in the order of other.
func (s *Set) Update(other *Set) *Set {
	if other == nil {
		return s
	}
	for _, f := range other.labels {
		s.Set(f, other.set[f.String()])
	}
	return s
}

// Labels returns the features in column order.
func (s *Set) Labels() []Feature {
	if s == nil {
		return nil
	}
	labels := make([]Feature, len(s.labels))
	copy(labels, s.labels)
	return labels
}

// Index returns the column position of a feature.
func (s *Set) Index(f Feature) (int, bool) {
	label := f.String()
	for i, l := range s.labels {
		if l.String() == label {
			return i, true
		}
	}
	return -1, false
}

// Copy returns a deep copy of the set.
func (s *Set) Copy() *Set {
	res := NewSet()
	res.Update(s)
	return res
}

// Matrix returns a metric representation of the Set to be used with matrix methods
// The matrix has m rows representing the number of observations and n columns representing
// the number of features.
func (s *Set) Matrix(intercept bool) *mat.Dense {
	if s == nil || len(s.labels) == 0 {
		return nil
	}

	m := s.m
	n := len(s.labels)
	if intercept {
		n += 1
	}

	obs := make([]float64, m*n)

	featNum := 0
	if intercept {
		for i := 0; i < m; i++ {
			obs[n*i] = 1.0
		}
		featNum += 1
	}

	for _, label := range s.labels {
		vals := s.set[label.String()]
		for i := 0; i < len(vals); i++ {
			obs[n*i+featNum] = vals[i]
		}
		featNum += 1
	}
	return mat.NewDense(m, n, obs)
}

// MatrixSlice returns the Set as a slice of columns, one per feature. Takes an intercept
// input if we want to include the intercept term.
func (s *Set) MatrixSlice(intercept bool) [][]float64 {
	if s == nil || len(s.labels) == 0 {
		return nil
	}

	n := len(s.labels)
	if intercept {
		n += 1
	}

	obs := make([][]float64, 0, n)
	if intercept {
		ones := make([]float64, s.m)
		floats.AddConst(1.0, ones)
		obs = append(obs, ones)
	}
	for _, label := range s.labels {
		obs = append(obs, s.set[label.String()])
	}
	return obs
}

// RemoveZeroOnlyFeatures drops every feature whose data is all zeros.
func (s *Set) RemoveZeroOnlyFeatures() {
	for _, label := range s.Labels() {
		vals := s.set[label.String()]
		if len(vals) == 0 {
			continue
		}
		if floats.Min(vals) == 0 && floats.Max(vals) == 0 {
			s.Del(label)
		}
	}
}
