package timedataset

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEmptyIndex      = errors.New("index has no time points")
	ErrIrregularIndex  = errors.New("index does not follow a constant frequency")
	ErrUnparseableTime = errors.New("unable to parse time")
	ErrNonPositiveStep = errors.New("number of steps must be positive")
)

// timeLayouts are tried in order when coercing strings into time points. Values without
// a zone are read as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"2006-01",
	"Jan 2006",
	"2006",
}

// ParseTime coerces a string into a time point using the common date layouts.
func ParseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q, %w", value, ErrUnparseableTime)
}

// Index is a sorted sequence of time points spaced by a constant frequency.
type Index struct {
	t    TimeSlice
	freq Freq
}

// NewIndex validates that t is strictly increasing and spaced by freq. An unset freq is
// inferred from the time points.
func NewIndex(t []time.Time, freq Freq) (*Index, error) {
	if len(t) == 0 {
		return nil, ErrEmptyIndex
	}
	if err := validateMonotonic(t); err != nil {
		return nil, err
	}

	tSlice := make(TimeSlice, len(t))
	copy(tSlice, t)

	if freq.IsZero() {
		var err error
		freq, err = InferFreq(tSlice)
		if err != nil {
			return nil, fmt.Errorf("unable to create index, %w", err)
		}
	}
	if !freq.fits(tSlice) {
		return nil, fmt.Errorf("expected frequency %s, %w", freq, ErrIrregularIndex)
	}
	return &Index{t: tSlice, freq: freq}, nil
}

// InferIndex creates an index, inferring the frequency from the time points.
func InferIndex(t []time.Time) (*Index, error) {
	return NewIndex(t, Freq{})
}

// ParseIndex coerces string values into an index.
func ParseIndex(values []string, freq Freq) (*Index, error) {
	t := make([]time.Time, len(values))
	for i, v := range values {
		tPnt, err := ParseTime(v)
		if err != nil {
			return nil, fmt.Errorf("at position %d, %w", i, err)
		}
		t[i] = tPnt
	}
	return NewIndex(t, freq)
}

// DateRange creates an index of n time points starting at start.
func DateRange(start time.Time, n int, freq Freq) (*Index, error) {
	if n < 1 {
		return nil, ErrEmptyIndex
	}
	if freq.IsZero() {
		return nil, ErrCannotInferFreq
	}
	t := make(TimeSlice, n)
	for i := 0; i < n; i++ {
		t[i] = freq.Add(start, i)
	}
	return &Index{t: t, freq: freq}, nil
}

func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.t)
}

func (idx *Index) Freq() Freq {
	return idx.freq
}

// Times returns a copy of the index time points.
func (idx *Index) Times() TimeSlice {
	t := make(TimeSlice, len(idx.t))
	copy(t, idx.t)
	return t
}

func (idx *Index) At(i int) time.Time {
	return idx.t[i]
}

func (idx *Index) Start() time.Time {
	return idx.t.StartTime()
}

func (idx *Index) End() time.Time {
	return idx.t.EndTime()
}

// SearchLeft returns the leftmost insertion position of tPnt in the index.
func (idx *Index) SearchLeft(tPnt time.Time) int {
	return idx.t.SearchLeft(tPnt)
}

// Extend returns the next steps time points after the end of the index, continuing its
// frequency.
func (idx *Index) Extend(steps int) (*Index, error) {
	if steps < 1 {
		return nil, fmt.Errorf("got %d steps, %w", steps, ErrNonPositiveStep)
	}
	return DateRange(idx.freq.Add(idx.End(), 1), steps, idx.freq)
}

// Attribute extracts a datetime component from every time point.
func (idx *Index) Attribute(attr Attribute) []int {
	return attr.ExtractAll(idx.t)
}

// Equal reports whether both indexes hold the same time points and frequency.
func (idx *Index) Equal(other *Index) bool {
	if idx == nil || other == nil {
		return idx == other
	}
	if idx.freq != other.freq || len(idx.t) != len(other.t) {
		return false
	}
	for i := range idx.t {
		if !idx.t[i].Equal(other.t[i]) {
			return false
		}
	}
	return true
}
