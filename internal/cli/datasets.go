package cli

import (
	"github.com/aouyang1/go-datadives/datasets"
	"github.com/spf13/cobra"
)

type datasetInfo struct {
	Key string `json:"key"`
	datasets.Info
	Defaults *datasets.PrepareOptions `json:"defaults"`
}

func (a *app) datasetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List the available datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := datasets.All()
			infos := make([]datasetInfo, 0, len(all))
			for _, ds := range all {
				infos = append(infos, datasetInfo{
					Key:      ds.Key,
					Info:     ds.Info(),
					Defaults: ds.DefaultPrepareOptions(),
				})
			}
			return writeJSON(cmd.OutOrStdout(), infos)
		},
	}
}
