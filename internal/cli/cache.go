package cli

import (
	"fmt"

	"github.com/aouyang1/go-datadives/datasets"
	"github.com/aouyang1/go-datadives/store"
	"github.com/spf13/cobra"
)

func (a *app) cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the download cache",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List cached downloads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, closeCache, err := a.openCache()
			if err != nil {
				return err
			}
			defer closeCache()

			switch c := cache.(type) {
			case *store.SQLiteStore:
				entries, err := c.List(cmd.Context())
				if err != nil {
					return err
				}
				if entries == nil {
					entries = []store.Entry{}
				}
				return writeJSON(cmd.OutOrStdout(), entries)
			case *datasets.DirCache:
				keys, err := c.List(cmd.Context())
				if err != nil {
					return err
				}
				if keys == nil {
					keys = []string{}
				}
				return writeJSON(cmd.OutOrStdout(), keys)
			}
			return fmt.Errorf("caching is disabled")
		},
	}

	rm := &cobra.Command{
		Use:   "rm <dataset>",
		Short: "Remove a cached download",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := datasets.Lookup(args[0])
			if err != nil {
				return err
			}
			cache, closeCache, err := a.openCache()
			if err != nil {
				return err
			}
			defer closeCache()

			var deleted bool
			switch c := cache.(type) {
			case *store.SQLiteStore:
				deleted, err = c.Delete(cmd.Context(), ds.FileName())
			case *datasets.DirCache:
				deleted, err = c.Delete(cmd.Context(), ds.FileName())
			default:
				return fmt.Errorf("caching is disabled")
			}
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"dataset": ds.Key,
				"key":     ds.FileName(),
				"deleted": deleted,
			})
		},
	}

	cmd.AddCommand(list, rm)
	return cmd
}
