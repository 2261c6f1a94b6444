package cli

import (
	"fmt"

	"github.com/aouyang1/go-datadives/naive"
	"github.com/aouyang1/go-datadives/stats"
	"github.com/aouyang1/go-datadives/timedataset"
	"github.com/spf13/cobra"
)

type naiveOutput struct {
	Method   naive.Method        `json:"method"`
	Forecast jsonFrame           `json:"forecast"`
	Scores   map[string]*float64 `json:"scores,omitempty"`
}

func (a *app) naiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "naive <dataset>",
		Short: "Forecast a dataset column with a naive baseline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			methodFlag, _ := cmd.Flags().GetString("method")
			period, _ := cmd.Flags().GetInt("period")
			steps, _ := cmd.Flags().GetInt("steps")
			holdout, _ := cmd.Flags().GetInt("holdout")

			method, err := naive.ParseMethod(methodFlag)
			if err != nil {
				return err
			}
			td, err := a.loadSeries(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}

			train, test := td, (*timedataset.TimeDataset)(nil)
			if holdout > 0 {
				if holdout >= td.Len() {
					return fmt.Errorf("holdout of %d leaves no training data in %d rows", holdout, td.Len())
				}
				train, test = split(td, td.Len()-holdout)
				steps = holdout
			}

			forecast, err := naive.Forecast(method, train, period, steps)
			if err != nil {
				return err
			}
			f, err := forecast.Frame()
			if err != nil {
				return err
			}
			if a.flags.format == "csv" {
				return a.writeFrames(cmd.OutOrStdout(), f)
			}

			out := naiveOutput{Method: method, Forecast: newJSONFrame(f)}
			if test != nil {
				scores, err := stats.NewScores(forecast.Y, test.Y)
				if err != nil {
					return err
				}
				out.Scores = map[string]*float64{
					"mse":  nullable([]float64{scores.MSE})[0],
					"rmse": nullable([]float64{scores.RMSE})[0],
					"mae":  nullable([]float64{scores.MAE})[0],
					"mape": nullable([]float64{scores.MAPE})[0],
				}
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	addPrepareFlags(cmd)
	addColumnFlag(cmd)
	cmd.Flags().StringP("method", "m", string(naive.MethodNaive), "Baseline: naive, seasonal or drift")
	cmd.Flags().Int("period", 12, "Seasonal period in rows for the seasonal baseline")
	cmd.Flags().Int("steps", 12, "Number of steps to forecast")
	cmd.Flags().Int("holdout", 0, "Hold out the last rows, forecast them and report scores")
	return cmd
}

func split(td *timedataset.TimeDataset, at int) (*timedataset.TimeDataset, *timedataset.TimeDataset) {
	head := &timedataset.TimeDataset{Name: td.Name, T: td.T[:at], Y: td.Y[:at]}
	tail := &timedataset.TimeDataset{Name: td.Name, T: td.T[at:], Y: td.Y[at:]}
	return head, tail
}
