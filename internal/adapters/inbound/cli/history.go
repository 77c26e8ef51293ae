package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/humorlab/humorlab/internal/adapters/outbound/history"
	"github.com/humorlab/humorlab/internal/adapters/outbound/tui"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var (
		jsonOutput bool
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show saved analyses",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := history.New().Load(opts.dir)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[len(entries)-limit:]
			}
			if jsonOutput {
				return renderJSON(cmd, entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output history as JSON")
	cmd.Flags().IntVar(&limit, "limit", 20, "Show at most this many recent entries (0 for all)")
	return cmd
}
