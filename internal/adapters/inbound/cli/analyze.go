package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/humorlab/humorlab/internal/adapters/outbound/history"
	"github.com/humorlab/humorlab/internal/adapters/outbound/llm"
	"github.com/humorlab/humorlab/internal/adapters/outbound/tui"
	"github.com/humorlab/humorlab/internal/application"
	"github.com/humorlab/humorlab/internal/domain"
	"github.com/humorlab/humorlab/internal/domain/scoring"
)

type analyzeWithOpinion struct {
	Result   *domain.AnalysisResult `json:"result"`
	Opinions []application.Opinion  `json:"second_opinion"`
}

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	var (
		jsonOutput  bool
		persona     string
		contextJSON string
		save        bool
		withLLM     bool
		theories    []string
	)

	cmd := &cobra.Command{
		Use:   "analyze [joke]",
		Short: "Analyze a joke",
		Long: "Score a joke against all nine humor theories. The joke is taken from the arguments, " +
			"or from stdin when no argument is given.",
		Example: `  humorlab analyze "Mój laptop ma więcej RAM-u niż ja chęci do życia."
  echo "Wujek Janusz znowu tłumaczy mi blockchain." | humorlab analyze --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			joke, err := jokeFrom(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			req := domain.AnalyzeRequest{JokeText: joke, Persona: persona}
			if contextJSON != "" {
				if err := json.Unmarshal([]byte(contextJSON), &req.Context); err != nil {
					return fmt.Errorf("parsing --context: %w", err)
				}
			}

			result, err := opts.service().Analyze(cmd.Context(), req)
			if err != nil {
				return err
			}

			if save {
				saveToHistory(opts, result)
			}

			var opinions []application.Opinion
			if withLLM {
				opinions, err = secondOpinion(cmd, opts, result, theories)
				if err != nil {
					return err
				}
			}

			if jsonOutput {
				if withLLM {
					return renderJSON(cmd, analyzeWithOpinion{Result: result, Opinions: opinions})
				}
				return renderJSON(cmd, result)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderAnalysis(result))
			if len(opinions) > 0 {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderOpinions(opinions))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the analysis as JSON")
	cmd.Flags().StringVar(&persona, "persona", "", "Speaker persona, e.g. "+strings.Join(scoring.KnownPersonas(), ", "))
	cmd.Flags().StringVar(&contextJSON, "context", "", "Analysis context as a JSON object")
	cmd.Flags().BoolVar(&save, "save", false, "Append a summary to .humorlab/history")
	cmd.Flags().BoolVar(&withLLM, "llm", false, "Ask the configured LLM for a second opinion")
	cmd.Flags().StringSliceVar(&theories, "theories", nil, "Theories for the second opinion (default: all)")

	return cmd
}

func jokeFrom(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func saveToHistory(opts *rootOptions, result *domain.AnalysisResult) {
	if !opts.cfg.HistoryEnabled() {
		opts.logger.Debug("history disabled, not saving")
		return
	}
	entry := history.EntryFor(result, time.Now().UTC().Format(time.RFC3339))
	if err := history.New().Save(opts.dir, entry); err != nil {
		opts.logger.Warn("saving history failed", zap.Error(err)) // best-effort
	}
}

func secondOpinion(cmd *cobra.Command, opts *rootOptions, result *domain.AnalysisResult, names []string) ([]application.Opinion, error) {
	ids := make([]domain.TheoryID, 0, len(names))
	for _, n := range names {
		ids = append(ids, domain.TheoryID(strings.TrimSpace(n)))
	}

	scorer, err := llm.NewGeminiScorer(cmd.Context(), opts.cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("second opinion: %w", err)
	}
	return application.NewOpinionService(scorer, opts.cfg, opts.logger).Compare(cmd.Context(), result, ids)
}
