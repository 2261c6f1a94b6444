package stats

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	mat_ "github.com/aouyang1/go-datadives/mat"
	"gonum.org/v1/gonum/floats"
)

var ErrInvalidLags = errors.New("invalid number of lags")

const (
	// KPSSLagsAuto picks the bandwidth from the data following Hobijn et al (1998).
	KPSSLagsAuto = -1
	// KPSSLagsLegacy uses ceil(12*(nobs/100)^(1/4)).
	KPSSLagsLegacy = -2
)

type KPSSOptions struct {
	Regression Regression `json:"regression"`

	// NLags is the bandwidth of the Bartlett window, or one of KPSSLagsAuto and
	// KPSSLagsLegacy.
	NLags int `json:"nlags"`
}

func NewDefaultKPSSOptions() *KPSSOptions {
	return &KPSSOptions{
		Regression: RegressionConstant,
		NLags:      KPSSLagsAuto,
	}
}

type KPSSResult struct {
	Statistic      float64            `json:"test_statistic"`
	PValue         float64            `json:"p_value"`
	Lags           int                `json:"num_lags"`
	CriticalValues map[string]float64 `json:"critical_values"`
	Stationary     bool               `json:"stationarity"`
}

var (
	kpssPValues = []float64{0.10, 0.05, 0.025, 0.01}
	kpssLevels  = []string{"10%", "5%", "2.5%", "1%"}
	kpssCrit    = map[Regression][]float64{
		RegressionConstant:      {0.347, 0.463, 0.574, 0.739},
		RegressionConstantTrend: {0.119, 0.146, 0.176, 0.216},
	}
)

// KPSS runs a Kwiatkowski-Phillips-Schmidt-Shin test. The null hypothesis is
// stationarity around a level or a trend, so the series is considered stationary when
// the p-value is above 0.05. The p-value is interpolated in the published table and
// clipped to its range.
func KPSS(y []float64, opt *KPSSOptions) (*KPSSResult, error) {
	if opt == nil {
		opt = NewDefaultKPSSOptions()
	}
	crit, exists := kpssCrit[opt.Regression]
	if !exists {
		return nil, fmt.Errorf("%q is not valid for kpss, %w", string(opt.Regression), ErrUnknownRegression)
	}
	if hasNaN(y) {
		return nil, ErrMissingValues
	}
	n := len(y)
	if n < 3 {
		return nil, fmt.Errorf("got %d observations, %w", n, ErrInsufficientData)
	}

	resids, err := kpssResiduals(y, opt.Regression)
	if err != nil {
		return nil, err
	}

	var nlags int
	switch {
	case opt.NLags == KPSSLagsAuto:
		nlags = min(kpssAutolag(resids), n-1)
	case opt.NLags == KPSSLagsLegacy:
		nlags = min(int(math.Ceil(12*math.Pow(float64(n)/100, 0.25))), n-1)
	case opt.NLags >= 0 && opt.NLags < n:
		nlags = opt.NLags
	default:
		return nil, fmt.Errorf("got %d lags for %d observations, %w", opt.NLags, n, ErrInvalidLags)
	}

	eta := 0.0
	partial := 0.0
	for _, r := range resids {
		partial += r
		eta += partial * partial
	}
	eta /= float64(n) * float64(n)

	stat := eta / longRunVariance(resids, nlags)

	critVals := make(map[string]float64, len(crit))
	for i, level := range kpssLevels {
		critVals[level] = crit[i]
	}

	pval := interpolate(stat, crit, kpssPValues)
	if stat < crit[0] || stat > crit[len(crit)-1] {
		slog.Warn(
			"kpss test statistic is outside of the p-value lookup table, the p-value is clipped",
			"statistic", stat,
			"p_value", pval,
		)
	}

	return &KPSSResult{
		Statistic:      stat,
		PValue:         pval,
		Lags:           nlags,
		CriticalValues: critVals,
		Stationary:     pval > 0.05,
	}, nil
}

func kpssResiduals(y []float64, r Regression) ([]float64, error) {
	n := len(y)
	resids := make([]float64, n)
	if r == RegressionConstant {
		mean := 0.0
		for _, v := range y {
			mean += v
		}
		mean /= float64(n)
		for i, v := range y {
			resids[i] = v - mean
		}
		return resids, nil
	}

	trend := make([]float64, n)
	for i := range trend {
		trend[i] = float64(i + 1)
	}
	x, err := mat_.NewDenseFromColumns(constant(n), trend)
	if err != nil {
		return nil, err
	}
	fit, err := ols(x, y)
	if err != nil {
		return nil, fmt.Errorf("unable to detrend series, %w", err)
	}
	for i, v := range y {
		resids[i] = v - fit.coef[0] - fit.coef[1]*trend[i]
	}
	return resids, nil
}

// longRunVariance is the Newey-West estimate with Bartlett weights.
func longRunVariance(resids []float64, nlags int) float64 {
	n := len(resids)
	s := 0.0
	for _, r := range resids {
		s += r * r
	}
	for l := 1; l <= nlags; l++ {
		s += 2 * autocov(resids, l) * (1 - float64(l)/float64(nlags+1))
	}
	return s / float64(n)
}

func kpssAutolag(resids []float64) int {
	n := len(resids)
	covlags := int(math.Pow(float64(n), 2.0/9.0))
	s0 := 0.0
	for _, r := range resids {
		s0 += r * r
	}
	s0 /= float64(n)

	s1 := 0.0
	for i := 1; i <= covlags; i++ {
		prod := autocov(resids, i) / (float64(n) / 2.0)
		s0 += prod
		s1 += float64(i) * prod
	}
	sHat := s1 / s0
	gamma := 1.1447 * math.Pow(sHat*sHat, 1.0/3.0)
	return int(gamma * math.Pow(float64(n), 1.0/3.0))
}

// autocov is the unscaled lag l cross product of resids with itself.
func autocov(resids []float64, l int) float64 {
	return floats.Dot(resids[l:], resids[:len(resids)-l])
}

// interpolate linearly maps x from the ascending xp onto fp, clamping outside of xp.
func interpolate(x float64, xp, fp []float64) float64 {
	if x <= xp[0] {
		return fp[0]
	}
	last := len(xp) - 1
	if x >= xp[last] {
		return fp[last]
	}
	for i := 1; i <= last; i++ {
		if x <= xp[i] {
			w := (x - xp[i-1]) / (xp[i] - xp[i-1])
			return fp[i-1] + w*(fp[i]-fp[i-1])
		}
	}
	return fp[last]
}
