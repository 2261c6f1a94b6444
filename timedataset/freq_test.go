package timedataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFreq(t *testing.T) {
	testData := map[string]struct {
		alias    string
		expected Freq
		err      error
	}{
		"hourly":       {alias: "1H", expected: Hourly},
		"bare hourly":  {alias: "H", expected: Hourly},
		"daily":        {alias: "1D", expected: Daily},
		"15 minutes":   {alias: "15min", expected: Freq{Step: 15 * time.Minute}},
		"month start":  {alias: "MS", expected: Monthly},
		"two months":   {alias: "2MS", expected: Freq{Months: 2}},
		"year start":   {alias: "AS", expected: Yearly},
		"unknown unit": {alias: "1X", err: ErrUnknownFreq},
		"zero mult":    {alias: "0D", err: ErrUnknownFreq},
		"empty":        {alias: "", err: ErrUnknownFreq},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := ParseFreq(td.alias)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, td.expected, res)
		})
	}
}

func TestFreqString(t *testing.T) {
	testData := map[string]struct {
		freq     Freq
		expected string
	}{
		"hourly":    {freq: Hourly, expected: "1H"},
		"daily":     {freq: Daily, expected: "1D"},
		"minutes":   {freq: Freq{Step: 15 * time.Minute}, expected: "15min"},
		"monthly":   {freq: Monthly, expected: "MS"},
		"quarterly": {freq: Quarterly, expected: "QS"},
		"unset":     {freq: Freq{}, expected: ""},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, td.freq.String())

			if td.expected == "" {
				return
			}
			var parsed Freq
			require.NoError(t, parsed.UnmarshalText([]byte(td.expected)))
			assert.Equal(t, td.freq, parsed)
		})
	}
}

func TestFreqAdd(t *testing.T) {
	start := time.Date(2020, 1, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC), Daily.Add(start, 1))
	assert.Equal(t, time.Date(2020, 1, 31, 5, 0, 0, 0, time.UTC), Hourly.Add(start, 5))

	monthStart := time.Date(2020, 11, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC), Monthly.Add(monthStart, 3))
}

func TestFreqTruncate(t *testing.T) {
	tPnt := time.Date(2020, 5, 17, 13, 45, 10, 0, time.UTC)

	testData := map[string]struct {
		freq     Freq
		expected time.Time
	}{
		"hourly":    {freq: Hourly, expected: time.Date(2020, 5, 17, 13, 0, 0, 0, time.UTC)},
		"6 hourly":  {freq: Freq{Step: 6 * time.Hour}, expected: time.Date(2020, 5, 17, 12, 0, 0, 0, time.UTC)},
		"7 hourly":  {freq: Freq{Step: 7 * time.Hour}, expected: time.Date(2020, 5, 17, 12, 0, 0, 0, time.UTC)},
		"daily":     {freq: Daily, expected: time.Date(2020, 5, 17, 0, 0, 0, 0, time.UTC)},
		"2 daily":   {freq: Freq{Step: 48 * time.Hour}, expected: time.Date(2020, 5, 16, 0, 0, 0, 0, time.UTC)},
		"monthly":   {freq: Monthly, expected: time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)},
		"quarterly": {freq: Quarterly, expected: time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC)},
		"yearly":    {freq: Yearly, expected: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, td.freq.Truncate(tPnt))
		})
	}
}

func TestFreqTruncateAcrossMidnight(t *testing.T) {
	freq := Freq{Step: 7 * time.Hour}
	start := time.Date(2020, 5, 17, 13, 45, 0, 0, time.UTC)
	next := time.Date(2020, 5, 18, 1, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2020, 5, 17, 12, 0, 0, 0, time.UTC), freq.Truncate(start))
	assert.Equal(t, time.Date(2020, 5, 17, 19, 0, 0, 0, time.UTC), freq.Truncate(next))
	assert.Equal(t, 7*time.Hour, freq.Truncate(next).Sub(freq.Truncate(start)))

	loc := time.FixedZone("UTC+2", 2*60*60)
	local := time.Date(2020, 5, 17, 13, 45, 0, 0, loc)
	assert.Equal(t, time.Date(2020, 5, 17, 12, 0, 0, 0, loc), freq.Truncate(local))
}

func TestInferFreq(t *testing.T) {
	testData := map[string]struct {
		t        TimeSlice
		expected Freq
		err      error
	}{
		"single point": {
			t:   TimeSlice{time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
			err: ErrCannotInferFreq,
		},
		"hourly": {
			t:        generateT(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), 5, Hourly),
			expected: Hourly,
		},
		"two month starts": {
			t: TimeSlice{
				time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC),
			},
			expected: Monthly,
		},
		"month starts across years": {
			t:        generateT(time.Date(2019, 11, 1, 0, 0, 0, 0, time.UTC), 6, Monthly),
			expected: Monthly,
		},
		"irregular": {
			t: TimeSlice{
				time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC),
				time.Date(2020, 1, 4, 0, 0, 0, 0, time.UTC),
			},
			err: ErrCannotInferFreq,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := InferFreq(td.t)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, td.expected, res)
		})
	}
}
