package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/humorlab/humorlab/internal/adapters/outbound/tui"
)

func newSelftestCmd(opts *rootOptions) *cobra.Command {
	var (
		jsonOutput bool
		runs       int
	)

	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in validation suite",
		Long:  "Analyze the built-in fixture jokes, check their expected theory scores and verify that repeated runs are identical.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := opts.service().Selftest(cmd.Context(), runs)
			if err != nil {
				return err
			}
			if jsonOutput {
				if err := renderJSON(cmd, cases); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderSelftest(cases))
			}

			failed := 0
			for _, c := range cases {
				if !c.Passed {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d self-test cases failed", failed, len(cases))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().IntVar(&runs, "runs", 3, "Repetitions per fixture for the determinism check")
	return cmd
}
