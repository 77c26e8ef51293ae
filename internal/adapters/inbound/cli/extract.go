package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/humorlab/humorlab/internal/adapters/outbound/tui"
	"github.com/humorlab/humorlab/internal/domain"
)

func newExtractCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "extract [joke]",
		Short: "Extract raw humor features from a joke",
		Long: "List the structural, lexical and narrative signals of a joke without scoring it. " +
			"The joke is taken from the arguments, or from stdin when no argument is given.",
		Example: `  humorlab extract "Dlaczego programista nie śpi? Bo serwer padł."
  echo "Wujek Janusz znowu tłumaczy mi blockchain." | humorlab extract --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			joke, err := jokeFrom(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			features, err := opts.service().Extract(cmd.Context(), domain.AnalyzeRequest{JokeText: joke})
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, features)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderFeatures(features))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the features as JSON")
	return cmd
}
