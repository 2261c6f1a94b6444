package deterministic

import (
	"testing"
	"time"

	"github.com/aouyang1/go-datadives/event"
	"github.com/aouyang1/go-datadives/timedataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestHolidays(t *testing.T) {
	idx := dailyIndex(t, time.Date(2020, 12, 20, 0, 0, 0, 0, time.UTC), 10)

	h, err := NewHolidays("christmas", "new_year", "Christmas")
	require.NoError(t, err)
	assert.Equal(t, "Holidays(names=[christmas, new_year])", h.String())

	in, err := h.InSample(idx)
	require.NoError(t, err)
	assert.Equal(t, []string{"holiday_christmas", "holiday_new_year"}, in.Columns())
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 1, 0, 0, 0, 0}, column(t, in, "holiday_christmas"))
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, column(t, in, "holiday_new_year"))

	out, err := h.OutOfSample(4, idx, nil)
	require.NoError(t, err)
	assert.Equal(t, in.Columns(), out.Columns())
	assert.Equal(t, []float64{0, 0, 1, 0}, column(t, out, "holiday_new_year"))

	_, err = NewHolidays("festivus")
	assert.ErrorIs(t, err, event.ErrUnknownHoliday)

	other, err := NewHolidays("christmas", "new_year")
	require.NoError(t, err)
	assert.True(t, h.Equal(other))
}

func TestHolidaysHourly(t *testing.T) {
	idx, err := timedataset.DateRange(time.Date(2020, 12, 25, 12, 0, 0, 0, time.UTC), 24, timedataset.Hourly)
	require.NoError(t, err)
	h, err := NewHolidays("christmas")
	require.NoError(t, err)

	in, err := h.InSample(idx)
	require.NoError(t, err)

	col := column(t, in, "holiday_christmas")
	assert.Equal(t, 12.0, floats.Sum(col))
	assert.Equal(t, 1.0, col[11])
	assert.Equal(t, 0.0, col[12])
}

func TestHolidaysObservedPreviousYear(t *testing.T) {
	idx := dailyIndex(t, time.Date(2021, 12, 20, 0, 0, 0, 0, time.UTC), 12)
	h, err := NewHolidays("new_year", "christmas")
	require.NoError(t, err)

	in, err := h.InSample(idx)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, column(t, in, "holiday_new_year"))
	assert.Equal(t, []float64{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0}, column(t, in, "holiday_christmas"))

	prev := dailyIndex(t, time.Date(2021, 12, 10, 0, 0, 0, 0, time.UTC), 10)
	out, err := h.OutOfSample(12, prev, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, column(t, out, "holiday_new_year"))
}
