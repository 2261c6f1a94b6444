package cli

import (
	"time"

	"github.com/aouyang1/go-datadives/stats"
	"github.com/spf13/cobra"
)

type stationarityOutput struct {
	Series  string            `json:"series"`
	NObs    int               `json:"num_obs"`
	Dropped int               `json:"dropped_missing"`
	ADF     *stats.ADFResult  `json:"adf"`
	KPSS    *stats.KPSSResult `json:"kpss"`

	Outliers *outlierReport `json:"outliers,omitempty"`
}

type outlierPoint struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

type outlierReport struct {
	TukeyFactor float64        `json:"tukey_factor"`
	Count       int            `json:"count"`
	Points      []outlierPoint `json:"points"`
}

func (a *app) stationarityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stationarity <dataset>",
		Short: "Run the ADF and KPSS stationarity tests on a dataset column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			regressionFlag, _ := cmd.Flags().GetString("regression")
			autolagFlag, _ := cmd.Flags().GetString("autolag")
			maxLag, _ := cmd.Flags().GetInt("max-lag")
			kpssLags, _ := cmd.Flags().GetInt("kpss-lags")

			regression, err := stats.ParseRegression(regressionFlag)
			if err != nil {
				return err
			}
			autolag, err := stats.ParseAutolag(autolagFlag)
			if err != nil {
				return err
			}

			td, err := a.loadSeries(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}
			clean := td.DropNan()

			adf, err := stats.ADF(clean.Y, &stats.ADFOptions{
				Regression: regression,
				MaxLag:     maxLag,
				Autolag:    autolag,
			})
			if err != nil {
				return err
			}

			kpssRegression := regression
			if kpssRegression == stats.RegressionNone {
				kpssRegression = stats.RegressionConstant
			}
			kpss, err := stats.KPSS(clean.Y, &stats.KPSSOptions{
				Regression: kpssRegression,
				NLags:      kpssLags,
			})
			if err != nil {
				return err
			}

			out := stationarityOutput{
				Series:  td.Name,
				NObs:    clean.Len(),
				Dropped: td.Len() - clean.Len(),
				ADF:     adf,
				KPSS:    kpss,
			}
			if outliers, _ := cmd.Flags().GetBool("outliers"); outliers {
				tukey, _ := cmd.Flags().GetFloat64("tukey")
				report := &outlierReport{TukeyFactor: tukey, Points: []outlierPoint{}}
				for _, i := range stats.DetectOutliers(clean.Y, 0.25, 0.75, tukey) {
					report.Points = append(report.Points, outlierPoint{Time: clean.T[i], Value: clean.Y[i]})
				}
				report.Count = len(report.Points)
				out.Outliers = report
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	addPrepareFlags(cmd)
	addColumnFlag(cmd)
	cmd.Flags().String("regression", string(stats.RegressionConstant), "Deterministic terms: c, ct or n (n is tested as c by kpss)")
	cmd.Flags().String("autolag", string(stats.AutolagAIC), "ADF lag selection: aic, bic or none")
	cmd.Flags().Int("max-lag", -1, "ADF maximum lag, negative for the default schedule")
	cmd.Flags().Int("kpss-lags", stats.KPSSLagsAuto, "KPSS bandwidth, -1 for auto and -2 for the legacy schedule")
	cmd.Flags().Bool("outliers", false, "Also report points outside the interquartile range widened by --tukey")
	cmd.Flags().Float64("tukey", 1.5, "Tukey factor applied to the interquartile range for --outliers")
	return cmd
}
