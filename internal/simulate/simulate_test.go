package simulate

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeries(t *testing.T) {
	s := Const(5, 1)

	res := s.Add(Const(5, 2))
	require.Equal(t, Series{3, 3, 3, 3, 3}, res)

	s.Scale(2)
	assert.Equal(t, Series{6, 6, 6, 6, 6}, s)

	s.SetNaN(0, 4)
	assert.True(t, math.IsNaN(s[0]))
	assert.True(t, math.IsNaN(s[4]))
	assert.Equal(t, 6.0, s[2])
}

func TestTrend(t *testing.T) {
	testData := map[string]struct {
		y        Series
		expected Series
	}{
		"straight": {
			y:        Trend(4, 10, 0.5),
			expected: Series{10, 10.5, 11, 11.5},
		},
		"piecewise": {
			y:        PiecewiseTrend(6, 1, []int{3}, []float64{-2}),
			expected: Series{0, 1, 2, 3, 2, 1},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, td.y)
		})
	}
}

func TestWave(t *testing.T) {
	start := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	tSeries := []time.Time{start, start.Add(6 * time.Hour), start.Add(12 * time.Hour)}

	y := Wave(tSeries, 2, 24*time.Hour, 1, 0)
	assert.InDeltaSlice(t, []float64{0, 2, 0}, y, 1e-9)
}

func TestRandomWalk(t *testing.T) {
	noise := Noise(rand.New(rand.NewPCG(1, 2)), 10, 1)
	walk := RandomWalk(rand.New(rand.NewPCG(1, 2)), 10, 1)

	var sum float64
	for i := range noise {
		sum += noise[i]
		assert.InDelta(t, sum, walk[i], 1e-12)
	}
}

func TestAR1(t *testing.T) {
	noise := Noise(rand.New(rand.NewPCG(3, 4)), 5, 1)
	ar := AR1(rand.New(rand.NewPCG(3, 4)), 5, 0.5, 1)

	assert.InDelta(t, noise[0], ar[0], 1e-12)
	for i := 1; i < len(ar); i++ {
		assert.InDelta(t, noise[i]+0.5*ar[i-1], ar[i], 1e-12)
	}
}
