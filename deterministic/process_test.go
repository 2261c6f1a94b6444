package deterministic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess(t *testing.T) {
	idx := monthlyIndex(t, time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), 24)

	trend, err := ParsePiecewiseLinearTrend("2020-01-01")
	require.NoError(t, err)
	seas, err := NewDatetimeAttributeSeasonality("quarter")
	require.NoError(t, err)

	p, err := NewProcess(idx, WithConstant(), WithTerms(trend, seas))
	require.NoError(t, err)
	assert.Len(t, p.Terms(), 2)

	expectedCols := []string{
		"const", "trend(0)", "trend(1)", "quarter=1", "quarter=2", "quarter=3", "quarter=4",
	}

	in, err := p.InSample()
	require.NoError(t, err)
	assert.Equal(t, expectedCols, in.Columns())
	assert.Equal(t, 24, in.Len())

	rows, cols := in.Matrix().Dims()
	assert.Equal(t, 24, rows)
	assert.Equal(t, 7, cols)
	assert.Equal(t, []float64{1, 13, 1, 1, 0, 0, 0}, in.Matrix().RawRowView(12))

	out, err := p.OutOfSample(3, nil)
	require.NoError(t, err)
	assert.Equal(t, expectedCols, out.Columns())
	assert.Equal(t, []float64{1, 25, 13, 1, 0, 0, 0}, out.Matrix().RawRowView(0))
	assert.Equal(t, time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC), out.Times()[2])
}

func TestProcessErrors(t *testing.T) {
	_, err := NewProcess(nil)
	assert.ErrorIs(t, err, ErrNilIndex)

	idx := dailyIndex(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), 5)
	p, err := NewProcess(idx, WithTerms(NewPiecewiseLinearTrend(), NewPiecewiseLinearTrend()))
	require.NoError(t, err)

	_, err = p.InSample()
	assert.ErrorIs(t, err, ErrDuplicateColumn)

	p, err = NewProcess(idx, WithConstant())
	require.NoError(t, err)
	_, err = p.OutOfSample(0, nil)
	assert.ErrorIs(t, err, ErrInvalidSteps)

	tbl, err := p.InSample()
	require.NoError(t, err)
	assert.Equal(t, []string{"const"}, tbl.Columns())
}

func TestProcessDropZeroColumns(t *testing.T) {
	idx := dailyIndex(t, time.Date(2020, 12, 20, 0, 0, 0, 0, time.UTC), 10)
	h, err := NewHolidays("christmas", "new_year")
	require.NoError(t, err)

	testData := map[string]struct {
		opts        []ProcessOption
		expectedIn  []string
		expectedOut []string
	}{
		"keep all": {
			opts:        []ProcessOption{WithConstant(), WithTerms(h)},
			expectedIn:  []string{"const", "holiday_christmas", "holiday_new_year"},
			expectedOut: []string{"const", "holiday_christmas", "holiday_new_year"},
		},
		"drop zero": {
			opts:        []ProcessOption{WithConstant(), WithTerms(h), WithDropZeroColumns()},
			expectedIn:  []string{"const", "holiday_christmas"},
			expectedOut: []string{"const", "holiday_christmas"},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			p, err := NewProcess(idx, td.opts...)
			require.NoError(t, err)

			in, err := p.InSample()
			require.NoError(t, err)
			assert.Equal(t, td.expectedIn, in.Columns())
			assert.Equal(t, 10, in.Len())

			out, err := p.OutOfSample(4, nil)
			require.NoError(t, err)
			assert.Equal(t, td.expectedOut, out.Columns())
			assert.Equal(t, 4, out.Len())
			assert.Equal(t, []float64{0, 0, 0, 0}, column(t, out, "holiday_christmas"))
		})
	}
}
