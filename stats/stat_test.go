package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectOutliers(t *testing.T) {
	testData := map[string]struct {
		y        []float64
		expected []int
	}{
		"single spike": {
			y:        []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100},
			expected: []int{9},
		},
		"spikes on both sides": {
			y:        []float64{-100, 2, 3, 4, 5, 6, 7, 8, 9, 100},
			expected: []int{0, 9},
		},
		"missing values ignored": {
			y:        []float64{1, 2, 3, math.NaN(), 4, 5, 6, 7, 8, 9, 100},
			expected: []int{10},
		},
		"empty": {
			y: nil,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, DetectOutliers(td.y, 0.25, 0.75, 1.5))
		})
	}
}

func TestDetectOutliersFullRange(t *testing.T) {
	assert.Equal(t, []int{0, 3}, DetectOutliers([]float64{1, 2, 3, 4}, 0, 1, 0))
}

func TestVarianceInflationFactor(t *testing.T) {
	vif, err := VarianceInflationFactor(map[string][]float64{
		"a": {1, -1, 1, -1},
		"b": {1, 1, -1, -1},
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, vif["a"], 1e-9)
	assert.InDelta(t, 1.0, vif["b"], 1e-9)

	vif, err = VarianceInflationFactor(map[string][]float64{
		"a": {1, 2, 3, 4, 5, 6},
		"b": {2, 4.1, 6, 8.2, 10, 11.9},
		"c": {1, -1, 1, -1, 1, -1},
	})
	require.NoError(t, err)
	assert.Greater(t, vif["a"], 10.0)
	assert.Greater(t, vif["b"], 10.0)
	assert.Less(t, vif["c"], vif["a"])

	testData := map[string]struct {
		features map[string][]float64
		err      error
	}{
		"one feature": {
			features: map[string][]float64{"a": {1, 2}},
			err:      ErrMinimumFeatures,
		},
		"short feature": {
			features: map[string][]float64{"a": {1}, "b": {1}},
			err:      ErrFeatureLen,
		},
		"length mismatch": {
			features: map[string][]float64{"a": {1, 2, 3}, "b": {1, 2}},
			err:      ErrFeatureLenMismatch,
		},
	}
	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := VarianceInflationFactor(td.features)
			assert.ErrorIs(t, err, td.err)
		})
	}
}
