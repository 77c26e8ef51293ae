package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/humorlab/humorlab/internal/adapters/outbound/tui"
)

func newTheoriesCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "theories",
		Short: "List the humor theories",
		RunE: func(cmd *cobra.Command, args []string) error {
			theories := opts.service().ListTheories()
			if jsonOutput {
				return renderJSON(cmd, theories)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderTheories(theories))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output theories as JSON")
	return cmd
}
