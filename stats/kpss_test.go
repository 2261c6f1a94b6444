package stats

import (
	"math/rand/v2"
	"testing"

	"github.com/aouyang1/go-datadives/internal/simulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKPSSKnownValue(t *testing.T) {
	res, err := KPSS([]float64{1, 2, 3, 4}, &KPSSOptions{Regression: RegressionConstant, NLags: 0})
	require.NoError(t, err)

	assert.InDelta(t, 0.425, res.Statistic, 1e-9)
	assert.InDelta(t, 0.10-0.05*(0.078/0.116), res.PValue, 1e-9)
	assert.Equal(t, 0, res.Lags)
	assert.True(t, res.Stationary)
	assert.Equal(t, map[string]float64{"10%": 0.347, "5%": 0.463, "2.5%": 0.574, "1%": 0.739}, res.CriticalValues)
}

func TestKPSSWhiteNoise(t *testing.T) {
	var stationary int
	for seed := uint64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, 3))
		y := simulate.Noise(rng, 500, 1.0)

		res, err := KPSS(y, nil)
		require.NoError(t, err)
		if res.Stationary {
			stationary++
		}
	}
	assert.GreaterOrEqual(t, stationary, 15)
}

func TestKPSSRandomWalk(t *testing.T) {
	var nonStationary int
	for seed := uint64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, 4))
		y := simulate.RandomWalk(rng, 500, 1.0)

		res, err := KPSS(y, &KPSSOptions{Regression: RegressionConstant, NLags: KPSSLagsLegacy})
		require.NoError(t, err)
		assert.Equal(t, 18, res.Lags)
		if !res.Stationary {
			nonStationary++
		}
	}
	assert.GreaterOrEqual(t, nonStationary, 15)
}

func TestKPSSTrendStationary(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	y := simulate.Trend(300, 10, 0.5).Add(simulate.Noise(rng, 300, 1.0))

	res, err := KPSS(y, &KPSSOptions{Regression: RegressionConstant, NLags: KPSSLagsAuto})
	require.NoError(t, err)
	assert.False(t, res.Stationary, "a trend is not level stationary")
	assert.Equal(t, 0.01, res.PValue)
	assert.Len(t, res.CriticalValues, 4)
	assert.Equal(t, 0.216, res.CriticalValues["1%"])
}

func TestKPSSInvalid(t *testing.T) {
	y := []float64{1, 3, 2, 4, 3, 5}

	testData := map[string]struct {
		opt *KPSSOptions
		y   []float64
		err error
	}{
		"no constant": {
			opt: &KPSSOptions{Regression: RegressionNone},
			y:   y,
			err: ErrUnknownRegression,
		},
		"too many lags": {
			opt: &KPSSOptions{Regression: RegressionConstant, NLags: 6},
			y:   y,
			err: ErrInvalidLags,
		},
		"unknown lag method": {
			opt: &KPSSOptions{Regression: RegressionConstant, NLags: -5},
			y:   y,
			err: ErrInvalidLags,
		},
		"too short": {
			opt: NewDefaultKPSSOptions(),
			y:   []float64{1, 2},
			err: ErrInsufficientData,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := KPSS(td.y, td.opt)
			assert.ErrorIs(t, err, td.err)
		})
	}
}

func TestInterpolate(t *testing.T) {
	xp := []float64{1, 2, 4}
	fp := []float64{10, 20, 0}

	assert.Equal(t, 10.0, interpolate(0, xp, fp))
	assert.Equal(t, 15.0, interpolate(1.5, xp, fp))
	assert.Equal(t, 10.0, interpolate(3, xp, fp))
	assert.Equal(t, 0.0, interpolate(9, xp, fp))
}
