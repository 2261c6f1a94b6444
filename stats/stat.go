package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	mat_ "github.com/aouyang1/go-datadives/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrMinimumFeatures    = errors.New("need at least 2 features to compute VIF")
	ErrFeatureLenMismatch = errors.New("some feature length is not consistent")
	ErrFeatureLen         = errors.New("must have at least 2 points per feature")
)

// DetectOutliers returns the positions of y outside of the percentile range widened by
// tukeyFactor times the range on each side.
func DetectOutliers(y []float64, lowerPerc, upperPerc, tukeyFactor float64) []int {
	if len(y) == 0 {
		return nil
	}
	lowerPerc = math.Max(lowerPerc, 0.0)
	upperPerc = math.Min(upperPerc, 1.0)
	tukeyFactor = math.Max(tukeyFactor, 0.0)

	yCopy := dropNaN(y)
	if len(yCopy) == 0 {
		return nil
	}
	sort.Float64s(yCopy)
	lowerIdx := int(math.Floor(float64(len(yCopy)) * lowerPerc))
	upperIdx := min(int(math.Ceil(float64(len(yCopy))*upperPerc)), len(yCopy)-1)

	lower := yCopy[lowerIdx]
	upper := yCopy[upperIdx]
	innerRange := upper - lower
	lower -= innerRange * tukeyFactor
	upper += innerRange * tukeyFactor

	var outlierIdx []int
	for i := 0; i < len(y); i++ {
		if y[i] >= upper || y[i] <= lower {
			outlierIdx = append(outlierIdx, i)
		}
	}
	return outlierIdx
}

// VarianceInflationFactor regresses every feature on all of the others plus an
// intercept and reports 1/(1-R^2) per feature.
func VarianceInflationFactor(features map[string][]float64) (map[string]float64, error) {
	if len(features) < 2 {
		return nil, ErrMinimumFeatures
	}
	var m int
	for _, feature := range features {
		if len(feature) < 2 {
			return nil, ErrFeatureLen
		}
		if m == 0 {
			m = len(feature)
			continue
		}
		if m != len(feature) {
			return nil, ErrFeatureLenMismatch
		}
	}

	labels := make([]string, 0, len(features))
	for label := range features {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	vif := make(map[string]float64, len(features))
	for _, label := range labels {
		cols := [][]float64{constant(m)}
		for _, otherLabel := range labels {
			if otherLabel != label {
				cols = append(cols, features[otherLabel])
			}
		}
		x, err := mat_.NewDenseFromColumns(cols...)
		if err != nil {
			return nil, err
		}
		fit, err := ols(x, features[label])
		if err != nil {
			return nil, fmt.Errorf("unable to regress feature %s, %w", label, err)
		}

		predicted := make([]float64, m)
		for i := range predicted {
			for j, col := range cols {
				predicted[i] += fit.coef[j] * col[i]
			}
		}
		r2 := stat.RSquaredFrom(predicted, features[label], nil)
		vif[label] = 1 / (1 - r2)
	}
	return vif, nil
}
