package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScores(t *testing.T) {
	testData := map[string]struct {
		predicted []float64
		actual    []float64
		expected  *Scores
		err       error
	}{
		"perfect": {
			predicted: []float64{1, 2, 3},
			actual:    []float64{1, 2, 3},
			expected:  &Scores{},
		},
		"constant offset": {
			predicted: []float64{2, 3, 4, 5},
			actual:    []float64{1, 2, 4, 4},
			expected: &Scores{
				MSE:  0.75,
				RMSE: math.Sqrt(0.75),
				MAE:  0.75,
				MAPE: (1.0 + 0.5 + 0 + 0.25) / 4,
			},
		},
		"missing and zero actual": {
			predicted: []float64{1, math.NaN(), 3},
			actual:    []float64{0, 5, 2},
			expected: &Scores{
				MSE:  1,
				RMSE: 1,
				MAE:  1,
				MAPE: 0.5,
			},
		},
		"length mismatch": {
			predicted: []float64{1},
			actual:    []float64{1, 2},
			err:       ErrResLenMismatch,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			scores, err := NewScores(td.predicted, td.actual)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, td.expected.MSE, scores.MSE, 1e-9)
			assert.InDelta(t, td.expected.RMSE, scores.RMSE, 1e-9)
			assert.InDelta(t, td.expected.MAE, scores.MAE, 1e-9)
			assert.InDelta(t, td.expected.MAPE, scores.MAPE, 1e-9)
		})
	}
}
