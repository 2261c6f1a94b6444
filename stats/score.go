package stats

import (
	"errors"
	"fmt"
	"math"
)

var ErrResLenMismatch = errors.New("predicted and actual have different lengths")

// Scores tracks the errors of a forecast against the observed values
type Scores struct {
	MSE  float64 `json:"mean_squared_error"`
	RMSE float64 `json:"root_mean_squared_error"`
	MAE  float64 `json:"mean_absolute_error"`
	MAPE float64 `json:"mean_absolute_percent_error"`
}

// NewScores calculates the scores given the predicted and actual input slice values.
// Points where either value is missing are skipped.
func NewScores(predicted, actual []float64) (*Scores, error) {
	mse, err := MSE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean squared error, %w", err)
	}
	mae, err := MAE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean absolute error, %w", err)
	}
	mape, err := MAPE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean absolute percent error, %w", err)
	}

	return &Scores{
		MSE:  mse,
		RMSE: math.Sqrt(mse),
		MAE:  mae,
		MAPE: mape,
	}, nil
}

// MSE computes the mean squared error, mean((y-yhat)^2).
// A score of 0 means a perfect match with no errors.
func MSE(predicted, actual []float64) (float64, error) {
	return meanOf(predicted, actual, func(p, a float64) (float64, bool) {
		return math.Pow(a-p, 2.0), true
	})
}

// MAE computes the mean absolute error, mean(abs(y-yhat)).
func MAE(predicted, actual []float64) (float64, error) {
	return meanOf(predicted, actual, func(p, a float64) (float64, bool) {
		return math.Abs(a - p), true
	})
}

// MAPE calculates the mean absolute percent error, mean(abs((y-yhat)/y)). Points with
// an actual value of zero are skipped.
func MAPE(predicted, actual []float64) (float64, error) {
	return meanOf(predicted, actual, func(p, a float64) (float64, bool) {
		if a == 0 {
			return 0, false
		}
		return math.Abs((a - p) / a), true
	})
}

func meanOf(predicted, actual []float64, errFn func(p, a float64) (float64, bool)) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}

	var total float64
	var cnt int
	for i := 0; i < len(actual); i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) {
			continue
		}
		v, ok := errFn(predicted[i], actual[i])
		if !ok {
			continue
		}
		total += v
		cnt++
	}
	if cnt == 0 {
		return math.NaN(), nil
	}
	return total / float64(cnt), nil
}
