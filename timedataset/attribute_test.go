package timedataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttribute(t *testing.T) {
	testData := map[string]struct {
		name     string
		expected Attribute
		err      error
	}{
		"month":         {name: "month", expected: AttrMonth},
		"upper case":    {name: "Hour", expected: AttrHour},
		"weekday alias": {name: "weekday", expected: AttrDayOfWeek},
		"unknown":       {name: "fortnight", err: ErrUnknownAttribute},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := ParseAttribute(td.name)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, td.expected, res)
		})
	}
}

func TestAttributeExtract(t *testing.T) {
	// 2021-01-03 is a sunday in ISO week 53 of 2020
	tPnt := time.Date(2021, 1, 3, 14, 30, 15, 0, time.UTC)

	testData := map[Attribute]int{
		AttrYear:       2021,
		AttrQuarter:    1,
		AttrMonth:      1,
		AttrDay:        3,
		AttrDayOfWeek:  6,
		AttrDayOfYear:  3,
		AttrWeekOfYear: 53,
		AttrHour:       14,
		AttrMinute:     30,
		AttrSecond:     15,
		Attribute("x"): -1,
	}

	for attr, expected := range testData {
		t.Run(string(attr), func(t *testing.T) {
			assert.Equal(t, expected, attr.Extract(tPnt))
		})
	}
}

func TestIndexAttribute(t *testing.T) {
	idx, err := DateRange(time.Date(2020, 11, 1, 0, 0, 0, 0, time.UTC), 4, Monthly)
	require.NoError(t, err)
	assert.Equal(t, []int{11, 12, 1, 2}, idx.Attribute(AttrMonth))
	assert.Equal(t, []int{4, 4, 1, 1}, idx.Attribute(AttrQuarter))
}
