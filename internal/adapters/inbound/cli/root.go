package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/humorlab/humorlab/internal/adapters/outbound/config"
	"github.com/humorlab/humorlab/internal/application"
	"github.com/humorlab/humorlab/internal/domain"
	"github.com/humorlab/humorlab/internal/domain/scoring"
)

var (
	version = "dev"
	commit  = "none"
)

// rootOptions carries state shared by every subcommand. It is filled in by
// the root PersistentPreRunE before any RunE executes.
type rootOptions struct {
	dir     string
	verbose bool

	cfg    domain.EngineConfig
	logger *zap.Logger
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.New().Load(o.dir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	o.cfg = cfg

	zcfg := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	if o.verbose {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	o.logger = logger.Named("humorlab").With(zap.String("command", cmd.Name()))
	return nil
}

func (o *rootOptions) service() *application.AnalyzeService {
	return application.NewAnalyzeService(scoring.Analyzers(), o.cfg, o.logger)
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{cfg: domain.DefaultConfig(), logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "humorlab",
		Short: "Score jokes against nine humor theories",
		Long: "humorlab analyzes a short text with nine heuristic humor theories and derives an overall score, " +
			"a dominant theory, goal-weighted reach, monetization and viral estimates, audience segments and improvements.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}
	cmd.PersistentFlags().StringVar(&opts.dir, "config-dir", ".", "Directory containing .humorlab.yaml and .humorlab/history")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAnalyzeCmd(opts))
	cmd.AddCommand(newExtractCmd(opts))
	cmd.AddCommand(newTheoriesCmd(opts))
	cmd.AddCommand(newBatchCmd(opts))
	cmd.AddCommand(newHistoryCmd(opts))
	cmd.AddCommand(newSelftestCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	return cmd, opts
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	cmd, _ := newRootCmd()
	return cmd
}

func Execute() error {
	cmd, opts := newRootCmd()
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", domain.PublicMessage(err, opts.cfg.Debug))
	}
	return err
}
