package stats

import (
	"errors"
	"fmt"
	"math"
	"strings"

	mat_ "github.com/aouyang1/go-datadives/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrInsufficientData = errors.New("insufficient data")
	ErrMissingValues    = errors.New("series contains missing values")
	ErrUnknownAutolag   = errors.New("unknown autolag criterion")
	ErrMaxLagTooLarge   = errors.New("max lag too large for the number of observations")
)

// Autolag is the information criterion used to pick the number of lagged differences.
type Autolag string

const (
	AutolagNone Autolag = ""
	AutolagAIC  Autolag = "aic"
	AutolagBIC  Autolag = "bic"
)

func ParseAutolag(name string) (Autolag, error) {
	a := Autolag(strings.ToLower(strings.TrimSpace(name)))
	switch a {
	case AutolagNone, AutolagAIC, AutolagBIC:
		return a, nil
	case "none":
		return AutolagNone, nil
	}
	return "", fmt.Errorf("%q, %w", name, ErrUnknownAutolag)
}

type ADFOptions struct {
	Regression Regression `json:"regression"`

	// MaxLag is the largest number of lagged differences. A negative value uses
	// 12*(nobs/100)^(1/4) capped to leave enough observations.
	MaxLag  int     `json:"max_lag"`
	Autolag Autolag `json:"autolag"`
}

func NewDefaultADFOptions() *ADFOptions {
	return &ADFOptions{
		Regression: RegressionConstant,
		MaxLag:     -1,
		Autolag:    AutolagAIC,
	}
}

type ADFResult struct {
	Statistic      float64            `json:"test_statistic"`
	PValue         float64            `json:"p_value"`
	Lags           int                `json:"num_lags"`
	NObs           int                `json:"num_obs"`
	CriticalValues map[string]float64 `json:"critical_values"`
	Stationary     bool               `json:"stationarity"`
}

// ADF runs an augmented Dickey-Fuller unit root test. The null hypothesis is a unit
// root, so the series is considered stationary when the p-value is below 0.05.
func ADF(y []float64, opt *ADFOptions) (*ADFResult, error) {
	if opt == nil {
		opt = NewDefaultADFOptions()
	}
	ntrend, err := opt.Regression.numTrend()
	if err != nil {
		return nil, err
	}
	if _, err := ParseAutolag(string(opt.Autolag)); err != nil {
		return nil, err
	}
	if hasNaN(y) {
		return nil, ErrMissingValues
	}

	n := len(y)
	upper := n/2 - ntrend - 1
	maxLag := opt.MaxLag
	if maxLag < 0 {
		maxLag = min(int(math.Ceil(12*math.Pow(float64(n)/100, 0.25))), upper)
		if maxLag < 0 {
			return nil, fmt.Errorf("got %d observations, %w", n, ErrInsufficientData)
		}
	} else if maxLag > upper {
		return nil, fmt.Errorf("max lag %d with %d observations, %w", maxLag, n, ErrMaxLagTooLarge)
	}

	dy := diff(y)
	lags := maxLag
	if opt.Autolag != AutolagNone {
		// every candidate is fit on the same sample so the criteria are comparable
		best := math.Inf(1)
		for p := 0; p <= maxLag; p++ {
			fit, err := adfRegression(y, dy, p, maxLag, ntrend)
			if err != nil {
				return nil, err
			}
			ic := fit.aic()
			if opt.Autolag == AutolagBIC {
				ic = fit.bic()
			}
			if ic < best {
				best, lags = ic, p
			}
		}
	}

	fit, err := adfRegression(y, dy, lags, lags, ntrend)
	if err != nil {
		return nil, err
	}
	stat := fit.coef[0] / fit.stdErr[0]
	pval := mackinnonP(stat, opt.Regression)

	return &ADFResult{
		Statistic:      stat,
		PValue:         pval,
		Lags:           lags,
		NObs:           fit.nobs,
		CriticalValues: mackinnonCrit(opt.Regression, fit.nobs),
		Stationary:     pval < 0.05,
	}, nil
}

// adfRegression regresses dy[t] on y[t], dy[t-1..t-lags] and the deterministic terms
// for every t from start onwards.
func adfRegression(y, dy []float64, lags, start, ntrend int) (*olsFit, error) {
	nobs := len(dy) - start
	if nobs <= 0 {
		return nil, fmt.Errorf("no observations after %d lags, %w", start, ErrInsufficientData)
	}

	cols := make([][]float64, 0, 1+lags+ntrend)
	level := make([]float64, nobs)
	copy(level, y[start:start+nobs])
	cols = append(cols, level)
	for l := 1; l <= lags; l++ {
		lagged := make([]float64, nobs)
		copy(lagged, dy[start-l:start-l+nobs])
		cols = append(cols, lagged)
	}
	if ntrend >= 1 {
		cols = append(cols, constant(nobs))
	}
	if ntrend == 2 {
		trend := make([]float64, nobs)
		for i := range trend {
			trend[i] = float64(i + 1)
		}
		cols = append(cols, trend)
	}

	x, err := mat_.NewDenseFromColumns(cols...)
	if err != nil {
		return nil, err
	}
	return ols(x, dy[start:])
}

// mackinnonCrit returns the finite sample critical values of MacKinnon (2010) for a
// single unit root.
func mackinnonCrit(r Regression, nobs int) map[string]float64 {
	t := float64(nobs)
	crit := make(map[string]float64, 3)
	for level, b := range mackinnonCritCoef[r] {
		crit[level] = b[0] + b[1]/t + b[2]/(t*t) + b[3]/(t*t*t)
	}
	return crit
}

var mackinnonCritCoef = map[Regression]map[string][4]float64{
	RegressionNone: {
		"1%":  {-2.56574, -2.2358, -3.627, 0},
		"5%":  {-1.94100, -0.2686, -3.365, 31.223},
		"10%": {-1.61682, 0.2656, -2.714, 25.364},
	},
	RegressionConstant: {
		"1%":  {-3.43035, -6.5393, -16.786, -79.433},
		"5%":  {-2.86154, -2.8903, -4.234, -40.040},
		"10%": {-2.56677, -1.5384, -2.809, 0},
	},
	RegressionConstantTrend: {
		"1%":  {-3.95877, -9.0531, -28.428, -134.155},
		"5%":  {-3.41049, -4.3904, -9.036, -45.374},
		"10%": {-3.12705, -2.5856, -3.925, -22.380},
	},
}

// mackinnonSurface holds the MacKinnon (1994) response surface for the asymptotic
// p-value of a single unit root test statistic.
type mackinnonSurface struct {
	min, max, star float64
	small          []float64
	large          []float64
}

var mackinnonSurfaces = map[Regression]mackinnonSurface{
	RegressionNone: {
		min: -19.04, max: 1.51, star: -1.04,
		small: []float64{0.6344, 1.2378, 0.032496},
		large: []float64{0.4797, 0.93557, -0.06999, 0.033066},
	},
	RegressionConstant: {
		min: -18.83, max: 2.74, star: -1.61,
		small: []float64{2.1659, 1.4412, 0.038269},
		large: []float64{1.7339, 0.93202, -0.12745, -0.010368},
	},
	RegressionConstantTrend: {
		min: -16.18, max: 0.7, star: -2.89,
		small: []float64{3.2512, 1.6047, 0.049588},
		large: []float64{2.5261, 0.61654, -0.37956, -0.060285},
	},
}

func mackinnonP(stat float64, r Regression) float64 {
	s := mackinnonSurfaces[r]
	if stat > s.max {
		return 1.0
	}
	if stat < s.min {
		return 0.0
	}

	coef := s.large
	if stat <= s.star {
		coef = s.small
	}
	return distuv.UnitNormal.CDF(polyval(coef, stat))
}

// polyval evaluates coef[0] + coef[1]*x + coef[2]*x^2 + ...
func polyval(coef []float64, x float64) float64 {
	res := 0.0
	for i := len(coef) - 1; i >= 0; i-- {
		res = res*x + coef[i]
	}
	return res
}

func diff(y []float64) []float64 {
	if len(y) < 2 {
		return nil
	}
	dy := make([]float64, len(y)-1)
	for i := range dy {
		dy[i] = y[i+1] - y[i]
	}
	return dy
}

func constant(n int) []float64 {
	c := make([]float64, n)
	for i := range c {
		c[i] = 1.0
	}
	return c
}

func hasNaN(y []float64) bool {
	for _, v := range y {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
