package cli

import (
	"log/slog"
	"runtime"

	"github.com/aouyang1/go-datadives/bootstrap"
	"github.com/spf13/cobra"
)

func (a *app) bootstrapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bootstrap <dataset>",
		Short: "Draw block bootstrap replicates of a dataset column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, _ := cmd.Flags().GetString("strategy")
			n, _ := cmd.Flags().GetInt("replicates")
			workers, _ := cmd.Flags().GetInt("workers")

			td, err := a.loadSeries(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}
			s, err := a.newSampler(strategy)
			if err != nil {
				return err
			}

			opt := s.Options()
			slog.Info("bootstrapping",
				"series", td.Name,
				"rows", td.Len(),
				"strategy", opt.Strategy,
				"block_size", opt.BlockSize,
				"replicates", n,
			)
			res, err := bootstrap.ParallelReplicates(s, td, n, workers)
			if err != nil {
				return err
			}
			return a.writeFrames(cmd.OutOrStdout(), res)
		},
	}
	addPrepareFlags(cmd)
	addColumnFlag(cmd)
	cmd.Flags().StringP("strategy", "s", bootstrap.MovingBlock.String(), "Bootstrap strategy: moving_block (mb) or circular_block (cb)")
	cmd.Flags().IntP("replicates", "n", 10, "Number of replicates")
	cmd.Flags().Int("workers", runtime.NumCPU(), "Number of concurrent workers")
	return cmd
}
