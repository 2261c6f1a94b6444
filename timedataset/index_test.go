package timedataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndex(t *testing.T) {
	hourly := generateT(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), 4, Hourly)

	testData := map[string]struct {
		t        []time.Time
		freq     Freq
		expected Freq
		err      error
	}{
		"empty": {
			err: ErrEmptyIndex,
		},
		"inferred": {
			t:        hourly,
			expected: Hourly,
		},
		"explicit": {
			t:        hourly,
			freq:     Hourly,
			expected: Hourly,
		},
		"explicit mismatch": {
			t:    hourly,
			freq: Daily,
			err:  ErrIrregularIndex,
		},
		"single point without frequency": {
			t:   hourly[:1],
			err: ErrCannotInferFreq,
		},
		"single point with frequency": {
			t:        hourly[:1],
			freq:     Daily,
			expected: Daily,
		},
		"non monotonic": {
			t:   []time.Time{hourly[1], hourly[0]},
			err: ErrNonMontonic,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			idx, err := NewIndex(td.t, td.freq)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, td.expected, idx.Freq())
			assert.Equal(t, len(td.t), idx.Len())
		})
	}
}

func TestParseIndex(t *testing.T) {
	idx, err := ParseIndex([]string{"2020-01-01", "2020-01-02", "2020-01-03"}, Freq{})
	require.NoError(t, err)
	assert.Equal(t, Daily, idx.Freq())
	assert.Equal(t, time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC), idx.End())

	idx, err = ParseIndex([]string{"2020-01-01 00:00:00", "2020-01-01 01:00:00"}, Freq{})
	require.NoError(t, err)
	assert.Equal(t, Hourly, idx.Freq())

	_, err = ParseIndex([]string{"2020-01-01", "yesterday"}, Freq{})
	assert.ErrorIs(t, err, ErrUnparseableTime)
}

func TestIndexExtend(t *testing.T) {
	testData := map[string]struct {
		start    time.Time
		freq     Freq
		steps    int
		expected []time.Time
		err      error
	}{
		"hourly": {
			start: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			freq:  Hourly,
			steps: 2,
			expected: []time.Time{
				time.Date(2020, 1, 1, 3, 0, 0, 0, time.UTC),
				time.Date(2020, 1, 1, 4, 0, 0, 0, time.UTC),
			},
		},
		"daily across month": {
			start: time.Date(2020, 1, 29, 0, 0, 0, 0, time.UTC),
			freq:  Daily,
			steps: 2,
			expected: []time.Time{
				time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2020, 2, 2, 0, 0, 0, 0, time.UTC),
			},
		},
		"monthly across year": {
			start: time.Date(2020, 10, 1, 0, 0, 0, 0, time.UTC),
			freq:  Monthly,
			steps: 2,
			expected: []time.Time{
				time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		"zero steps": {
			start: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			freq:  Daily,
			err:   ErrNonPositiveStep,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			idx, err := DateRange(td.start, 3, td.freq)
			require.NoError(t, err)

			ext, err := idx.Extend(td.steps)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, TimeSlice(td.expected), ext.Times())
			assert.Equal(t, td.freq, ext.Freq())
		})
	}
}

func TestIndexSearchLeft(t *testing.T) {
	idx, err := DateRange(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), 5, Daily)
	require.NoError(t, err)

	testData := map[string]struct {
		tPnt     time.Time
		expected int
	}{
		"before start":    {tPnt: time.Date(2019, 12, 1, 0, 0, 0, 0, time.UTC), expected: 0},
		"exact match":     {tPnt: time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC), expected: 2},
		"between points":  {tPnt: time.Date(2020, 1, 3, 12, 0, 0, 0, time.UTC), expected: 3},
		"after end":       {tPnt: time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC), expected: 5},
		"exact last":      {tPnt: time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC), expected: 4},
		"exact first":     {tPnt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), expected: 0},
		"just after last": {tPnt: time.Date(2020, 1, 5, 0, 0, 1, 0, time.UTC), expected: 5},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, idx.SearchLeft(td.tPnt))
		})
	}
}

func TestIndexEqual(t *testing.T) {
	a, err := DateRange(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), 3, Daily)
	require.NoError(t, err)
	b, err := InferIndex(a.Times())
	require.NoError(t, err)
	c, err := DateRange(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), 3, Hourly)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}
