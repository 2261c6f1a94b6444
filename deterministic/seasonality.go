package deterministic

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/aouyang1/go-datadives/feature"
	"github.com/aouyang1/go-datadives/timedataset"
)

// DatetimeAttributeSeasonality dummy encodes a datetime attribute such as the month or
// the hour of day, one indicator column per attribute value observed in the historical
// index. The same columns are produced in and out of sample.
type DatetimeAttributeSeasonality struct {
	attr      timedataset.Attribute
	dropFirst bool
}

type SeasonalityOption func(*DatetimeAttributeSeasonality)

// WithDropFirst drops the column of the smallest attribute value as the reference
// category, in both the in sample and out of sample tables.
func WithDropFirst() SeasonalityOption {
	return func(s *DatetimeAttributeSeasonality) {
		s.dropFirst = true
	}
}

func NewDatetimeAttributeSeasonality(attr string, opts ...SeasonalityOption) (*DatetimeAttributeSeasonality, error) {
	parsed, err := timedataset.ParseAttribute(attr)
	if err != nil {
		return nil, err
	}
	s := &DatetimeAttributeSeasonality{attr: parsed}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *DatetimeAttributeSeasonality) Attribute() timedataset.Attribute {
	return s.attr
}

func (s *DatetimeAttributeSeasonality) String() string {
	return fmt.Sprintf("DatetimeAttributeSeasonality(attr=%s, drop_first=%t)", s.attr, s.dropFirst)
}

func (s *DatetimeAttributeSeasonality) Equal(other Term) bool {
	o, ok := other.(*DatetimeAttributeSeasonality)
	if !ok || o == nil {
		return false
	}
	return s.attr == o.attr && s.dropFirst == o.dropFirst
}

// categories returns the sorted distinct attribute values of the index.
func (s *DatetimeAttributeSeasonality) categories(index *timedataset.Index) []int {
	seen := make(map[int]struct{})
	for _, v := range index.Attribute(s.attr) {
		seen[v] = struct{}{}
	}
	cats := make([]int, 0, len(seen))
	for v := range seen {
		cats = append(cats, v)
	}
	sort.Ints(cats)
	return cats
}

func (s *DatetimeAttributeSeasonality) InSample(index *timedataset.Index) (*Table, error) {
	if index == nil {
		return nil, ErrNilIndex
	}
	return s.table(index, s.categories(index))
}

// OutOfSample encodes the forecast index against the categories of the historical
// index. Forecast values never seen in the history get an all zero row.
func (s *DatetimeAttributeSeasonality) OutOfSample(steps int, index, forecastIndex *timedataset.Index) (*Table, error) {
	fIdx, err := forecastIndexFor(steps, index, forecastIndex)
	if err != nil {
		return nil, err
	}
	return s.table(fIdx, s.categories(index))
}

func (s *DatetimeAttributeSeasonality) table(index *timedataset.Index, cats []int) (*Table, error) {
	values := index.Attribute(s.attr)

	known := make(map[int]struct{}, len(cats))
	for _, c := range cats {
		known[c] = struct{}{}
	}
	var unseen []int
	for _, v := range values {
		if _, exists := known[v]; !exists {
			unseen = append(unseen, v)
		}
	}
	if len(unseen) > 0 {
		slog.Warn("attribute values not present in the historical index",
			"attribute", string(s.attr), "values", unseen)
	}

	if s.dropFirst && len(cats) > 0 {
		cats = cats[1:]
	}

	tbl := newTable(index.Times())
	for _, c := range cats {
		col := make([]float64, len(values))
		for i, v := range values {
			if v == c {
				col[i] = 1.0
			}
		}
		if err := tbl.add(feature.NewDummy(string(s.attr), c), col); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}
