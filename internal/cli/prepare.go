package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) prepareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prepare <dataset>",
		Short: "Clean and resample a dataset into a regular frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.loadFrame(cmd.Context(), cmd, args[0])
			if err != nil {
				return err
			}
			return a.writeFrames(cmd.OutOrStdout(), f)
		},
	}
	addPrepareFlags(cmd)
	return cmd
}
