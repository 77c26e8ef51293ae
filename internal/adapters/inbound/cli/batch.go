package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/humorlab/humorlab/internal/application"
)

func newBatchCmd(opts *rootOptions) *cobra.Command {
	var persona string

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Analyze one joke per line",
		Long: "Analyze every non-blank line of a file (or stdin when the file is \"-\") and print one JSON " +
			"object per line. Lines starting with # are skipped. Invalid lines are reported inline.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening batch file: %w", err)
				}
				defer f.Close()
				in = f
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			return opts.service().AnalyzeBatch(cmd.Context(), in, persona, func(item application.BatchItem) error {
				return enc.Encode(item)
			})
		},
	}

	cmd.Flags().StringVar(&persona, "persona", "", "Speaker persona applied to every line")
	return cmd
}
