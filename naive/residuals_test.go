package naive

import (
	"math"
	"testing"

	"github.com/aouyang1/go-datadives/timedataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResiduals(t *testing.T) {
	nan := math.NaN()

	testData := map[string]struct {
		method   Method
		period   int
		y        []float64
		expected []float64
		err      error
	}{
		"naive": {
			method:   MethodNaive,
			y:        []float64{1, 4, 2, 2},
			expected: []float64{nan, 3, -2, 0},
		},
		"seasonal": {
			method:   MethodSeasonal,
			period:   2,
			y:        []float64{1, 4, 2, 6, 3},
			expected: []float64{nan, nan, 1, 2, 1},
		},
		"drift": {
			method:   MethodDrift,
			y:        []float64{0, 3, 4, 6},
			expected: []float64{nan, 1, -1, 0},
		},
		"seasonal period too long": {
			method: MethodSeasonal,
			period: 5,
			y:      []float64{1, 2, 3},
			err:    ErrInvalidPeriod,
		},
		"drift single point": {
			method: MethodDrift,
			y:      []float64{1},
			err:    ErrNoElapsedTime,
		},
		"unknown": {
			method: Method("mean"),
			y:      []float64{1, 2},
			err:    ErrUnknownMethod,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := Residuals(td.method, series(t, timedataset.Daily, td.y), td.period)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			require.Len(t, res.Y, len(td.expected))
			for i, v := range td.expected {
				if math.IsNaN(v) {
					assert.True(t, math.IsNaN(res.Y[i]), "index %d", i)
					continue
				}
				assert.InDelta(t, v, res.Y[i], 1e-9, "index %d", i)
			}
		})
	}

	_, err := Residuals(MethodNaive, nil, 0)
	assert.ErrorIs(t, err, ErrNilTimeDataset)
}
