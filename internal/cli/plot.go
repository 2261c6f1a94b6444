package cli

import (
	"fmt"
	"strings"

	"github.com/aouyang1/go-datadives/bootstrap"
	"github.com/aouyang1/go-datadives/naive"
	"github.com/aouyang1/go-datadives/timedataset"
	"github.com/aouyang1/go-datadives/viz"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/spf13/cobra"
)

func (a *app) plotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot <dataset>",
		Short: "Render diagnostic charts of a dataset column to html",
		Long: "Kinds: series (time plot), seasonal (seasonal periods), acf (acf and pacf), " +
			"residuals (naive baseline residual diagnostics), bootstrap (replicate envelope).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			out, _ := cmd.Flags().GetString("out")

			td, err := a.loadSeries(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}
			chartList, err := a.charts(cmd, strings.ToLower(kind), td)
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				return viz.Render(cmd.OutOrStdout(), chartList...)
			}
			return viz.RenderFile(out, chartList...)
		},
	}
	addPrepareFlags(cmd)
	addColumnFlag(cmd)
	cmd.Flags().StringP("kind", "k", "series", "Chart kind: series, seasonal, acf, residuals or bootstrap")
	cmd.Flags().StringP("out", "o", "", "Output html file (default: stdout)")
	cmd.Flags().String("period", "year", "Seasonal plot grouping attribute")
	cmd.Flags().String("position", "month", "Seasonal plot x axis attribute")
	cmd.Flags().Int("lags", 40, "Number of autocorrelation lags")
	cmd.Flags().Float64("alpha", 0.05, "Autocorrelation confidence band level")
	cmd.Flags().String("method", string(naive.MethodSeasonal), "Baseline for residual diagnostics")
	cmd.Flags().Int("season", 12, "Seasonal period in rows for the seasonal baseline")
	cmd.Flags().String("strategy", bootstrap.MovingBlock.String(), "Bootstrap strategy")
	cmd.Flags().Int("replicates", 50, "Number of bootstrap replicates")
	return cmd
}

func (a *app) charts(cmd *cobra.Command, kind string, td *timedataset.TimeDataset) ([]components.Charter, error) {
	flags := cmd.Flags()
	switch kind {
	case "series":
		line, err := viz.TimeSeries(td.Name, td)
		if err != nil {
			return nil, err
		}
		return []components.Charter{line}, nil
	case "seasonal":
		periodFlag, _ := flags.GetString("period")
		positionFlag, _ := flags.GetString("position")
		period, err := timedataset.ParseAttribute(periodFlag)
		if err != nil {
			return nil, err
		}
		position, err := timedataset.ParseAttribute(positionFlag)
		if err != nil {
			return nil, err
		}
		line, err := viz.SeasonalPeriods(td, period, position)
		if err != nil {
			return nil, err
		}
		return []components.Charter{line}, nil
	case "acf":
		lags, _ := flags.GetInt("lags")
		alpha, _ := flags.GetFloat64("alpha")
		acf, pacf, err := viz.Autocorrelations(td.DropNan().Y, lags, alpha)
		if err != nil {
			return nil, err
		}
		return []components.Charter{acf, pacf}, nil
	case "residuals":
		methodFlag, _ := flags.GetString("method")
		season, _ := flags.GetInt("season")
		lags, _ := flags.GetInt("lags")
		alpha, _ := flags.GetFloat64("alpha")
		method, err := naive.ParseMethod(methodFlag)
		if err != nil {
			return nil, err
		}
		resid, err := naive.Residuals(method, td, season)
		if err != nil {
			return nil, err
		}
		opt := viz.NewDefaultResidualOptions()
		opt.Lags, opt.Alpha = lags, alpha
		line, acf, hist, err := viz.ResidualDiagnostics(resid, opt)
		if err != nil {
			return nil, err
		}
		return []components.Charter{line, acf, hist}, nil
	case "bootstrap":
		strategy, _ := flags.GetString("strategy")
		n, _ := flags.GetInt("replicates")
		s, err := a.newSampler(strategy)
		if err != nil {
			return nil, err
		}
		reps, err := bootstrap.Replicates(s, td, n)
		if err != nil {
			return nil, err
		}
		line, err := viz.Replicates(td, reps, 0.05, 0.95)
		if err != nil {
			return nil, err
		}
		return []components.Charter{line}, nil
	}
	return nil, fmt.Errorf("unknown chart kind %q", kind)
}
