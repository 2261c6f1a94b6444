package cli

import (
	"fmt"
	"log/slog"

	"github.com/aouyang1/go-datadives/deterministic"
	"github.com/aouyang1/go-datadives/stats"
	"github.com/aouyang1/go-datadives/timedataset"
	"github.com/spf13/cobra"
)

type featuresOutput struct {
	Terms       []string             `json:"terms"`
	InSample    *deterministic.Table `json:"in_sample"`
	OutOfSample *deterministic.Table `json:"out_of_sample,omitempty"`
	VIF         map[string]*float64  `json:"vif,omitempty"`
}

func (a *app) featuresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "features <dataset>",
		Short: "Generate deterministic trend, seasonality and holiday features over a dataset index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.loadFrame(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}
			index, err := f.Index()
			if err != nil {
				return err
			}

			terms, err := termsFromFlags(cmd)
			if err != nil {
				return err
			}
			var opts []deterministic.ProcessOption
			if constant, _ := cmd.Flags().GetBool("constant"); constant {
				opts = append(opts, deterministic.WithConstant())
			}
			opts = append(opts, deterministic.WithTerms(terms...))
			if dropZero, _ := cmd.Flags().GetBool("drop-zero"); dropZero {
				opts = append(opts, deterministic.WithDropZeroColumns())
			}

			proc, err := deterministic.NewProcess(index, opts...)
			if err != nil {
				return err
			}

			out := featuresOutput{}
			for _, term := range terms {
				out.Terms = append(out.Terms, term.String())
			}
			out.InSample, err = proc.InSample()
			if err != nil {
				return err
			}

			steps, _ := cmd.Flags().GetInt("steps")
			if steps > 0 {
				out.OutOfSample, err = proc.OutOfSample(steps, nil)
				if err != nil {
					return err
				}
			}

			if vif, _ := cmd.Flags().GetBool("vif"); vif {
				out.VIF = varianceInflation(out.InSample)
			}

			if a.flags.format == "csv" {
				frames := []*timedataset.Frame{}
				for _, tbl := range []*deterministic.Table{out.InSample, out.OutOfSample} {
					if tbl == nil {
						continue
					}
					tf, err := tableFrame(tbl)
					if err != nil {
						return err
					}
					frames = append(frames, tf)
				}
				return a.writeFrames(cmd.OutOrStdout(), frames...)
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	addPrepareFlags(cmd)
	cmd.Flags().String("knots", "", "Comma separated piecewise linear trend knots, e.g. 2000-01-01,2015-06-01")
	cmd.Flags().Bool("trend", false, "Add a piecewise linear trend even without knots")
	cmd.Flags().String("seasonality", "", "Comma separated datetime attributes, e.g. month,dayofweek")
	cmd.Flags().Bool("drop-first", false, "Drop the first category of every seasonality")
	cmd.Flags().String("holidays", "", "Comma separated US holidays, e.g. christmas,thanksgiving")
	cmd.Flags().Bool("constant", false, "Add a constant column")
	cmd.Flags().Int("steps", 0, "Also generate out of sample features for this many steps")
	cmd.Flags().Bool("drop-zero", false, "Drop columns that are all zeros in sample, e.g. holidays never hit")
	cmd.Flags().Bool("vif", false, "Report the variance inflation factor of every in sample column")
	return cmd
}

func termsFromFlags(cmd *cobra.Command) ([]deterministic.Term, error) {
	var terms []deterministic.Term

	knotsFlag, _ := cmd.Flags().GetString("knots")
	trend, _ := cmd.Flags().GetBool("trend")
	if knots := splitList(knotsFlag); len(knots) > 0 || trend {
		t, err := deterministic.ParsePiecewiseLinearTrend(knots...)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}

	seasonFlag, _ := cmd.Flags().GetString("seasonality")
	dropFirst, _ := cmd.Flags().GetBool("drop-first")
	for _, attr := range splitList(seasonFlag) {
		var opts []deterministic.SeasonalityOption
		if dropFirst {
			opts = append(opts, deterministic.WithDropFirst())
		}
		s, err := deterministic.NewDatetimeAttributeSeasonality(attr, opts...)
		if err != nil {
			return nil, err
		}
		terms = append(terms, s)
	}

	holidayFlag, _ := cmd.Flags().GetString("holidays")
	if names := splitList(holidayFlag); len(names) > 0 {
		h, err := deterministic.NewHolidays(names...)
		if err != nil {
			return nil, err
		}
		terms = append(terms, h)
	}

	if len(terms) == 0 {
		return nil, fmt.Errorf("no terms, set --knots, --trend, --seasonality or --holidays")
	}
	return terms, nil
}

// varianceInflation skips the constant column. Collinear columns report null.
func varianceInflation(tbl *deterministic.Table) map[string]*float64 {
	cols := make(map[string][]float64)
	for _, name := range tbl.Columns() {
		if name == "const" {
			continue
		}
		cols[name], _ = tbl.Column(name)
	}

	vif, err := stats.VarianceInflationFactor(cols)
	if err != nil {
		slog.Warn("unable to compute variance inflation factors", "error", err)
		return nil
	}
	res := make(map[string]*float64, len(vif))
	for name, v := range vif {
		res[name] = nullable([]float64{v})[0]
	}
	return res
}

func tableFrame(tbl *deterministic.Table) (*timedataset.Frame, error) {
	columns := tbl.Columns()
	data := make([][]float64, len(columns))
	for i, name := range columns {
		data[i], _ = tbl.Column(name)
	}
	return timedataset.NewFrame(tbl.Times(), columns, data)
}
