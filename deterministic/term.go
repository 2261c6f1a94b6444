package deterministic

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-datadives/timedataset"
)

var (
	ErrNilIndex         = errors.New("no time index supplied")
	ErrInvalidSteps     = errors.New("number of forecast steps must be positive")
	ErrForecastIndexLen = errors.New("forecast index length does not match number of steps")
)

// Term generates deterministic feature columns over a historical time index and over
// the forecast horizon that follows it. Both paths produce the same columns so a model
// fit on the in sample table applies unchanged to the out of sample one.
type Term interface {
	String() string
	InSample(index *timedataset.Index) (*Table, error)
	OutOfSample(steps int, index, forecastIndex *timedataset.Index) (*Table, error)
	Equal(other Term) bool
}

// forecastIndexFor returns forecastIndex when given, after checking it has exactly
// steps time points, otherwise the index extended by steps.
func forecastIndexFor(steps int, index, forecastIndex *timedataset.Index) (*timedataset.Index, error) {
	if index == nil {
		return nil, ErrNilIndex
	}
	if steps < 1 {
		return nil, fmt.Errorf("got %d steps, %w", steps, ErrInvalidSteps)
	}
	if forecastIndex != nil {
		if forecastIndex.Len() != steps {
			return nil, fmt.Errorf(
				"forecast index has %d time points for %d steps, %w",
				forecastIndex.Len(), steps, ErrForecastIndexLen,
			)
		}
		return forecastIndex, nil
	}
	return index.Extend(steps)
}
