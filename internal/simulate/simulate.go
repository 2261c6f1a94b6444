// Package simulate generates synthetic series with known structure for tests of the
// statistics and bootstrap routines.
package simulate

import (
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Series is a simulated sequence of values that can be composed in place.
type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

func (s Series) Scale(c float64) Series {
	floats.Scale(c, s)
	return s
}

// SetNaN blanks out the values at the given positions to simulate gaps.
func (s Series) SetNaN(positions ...int) Series {
	for _, i := range positions {
		s[i] = math.NaN()
	}
	return s
}

func Const(n int, val float64) Series {
	y := make(Series, n)
	for i := range y {
		y[i] = val
	}
	return y
}

// Trend returns a straight line intercept + slope*i.
func Trend(n int, intercept, slope float64) Series {
	y := make(Series, n)
	for i := range y {
		y[i] = intercept + slope*float64(i)
	}
	return y
}

// PiecewiseTrend returns a continuous trend through the origin whose slope changes by
// slopeChanges[k] at position knots[k].
func PiecewiseTrend(n int, slope float64, knots []int, slopeChanges []float64) Series {
	y := Trend(n, 0, slope)
	for k, knot := range knots {
		for i := knot; i < n; i++ {
			y[i] += slopeChanges[k] * float64(i-knot)
		}
	}
	return y
}

// Wave returns a sine wave over t with the given period and harmonic order.
func Wave(t []time.Time, amp float64, period time.Duration, order, phase float64) Series {
	y := make(Series, len(t))
	periodSec := period.Seconds()
	for i, tPnt := range t {
		y[i] = amp * math.Sin(2.0*math.Pi*order/periodSec*float64(tPnt.Unix())+phase)
	}
	return y
}

// Noise returns gaussian white noise with standard deviation scale.
func Noise(rng *rand.Rand, n int, scale float64) Series {
	y := make(Series, n)
	for i := range y {
		y[i] = rng.NormFloat64() * scale
	}
	return y
}

// RandomWalk returns the cumulative sum of gaussian steps, a unit root process.
func RandomWalk(rng *rand.Rand, n int, scale float64) Series {
	y := Noise(rng, n, scale)
	floats.CumSum(y, y)
	return y
}

// AR1 returns y[i] = phi*y[i-1] + e[i] with gaussian innovations.
func AR1(rng *rand.Rand, n int, phi, scale float64) Series {
	y := Noise(rng, n, scale)
	for i := 1; i < n; i++ {
		y[i] += phi * y[i-1]
	}
	return y
}
