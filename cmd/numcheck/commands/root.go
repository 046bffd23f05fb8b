package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mrled/suns/numcheck/internal/logger"
	"github.com/mrled/suns/numcheck/internal/metrics"
	"github.com/mrled/suns/numcheck/internal/repository"
	"github.com/mrled/suns/numcheck/internal/service/check"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand of one invocation
type app struct {
	log             *slog.Logger
	metrics         *metrics.Metrics
	metricsTextfile string
	logLevel        string
}

func newApp() *app {
	return &app{
		log:     slog.Default(),
		metrics: metrics.NewMetrics(),
	}
}

// NewRootCmd builds the numcheck command tree
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "numcheck",
		Short: "Numcheck runs small integer checks and equality assertions",
		Long: `A command-line tool for absolute values, decimal palindrome checks and named equality assertions.

Run without a subcommand to print the demonstration checks.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := logger.DefaultConfig("text")
			if a.logLevel != "" {
				cfg.Level = a.logLevel
			}
			cfg.Output = cmd.ErrOrStderr()
			a.log = logger.WithExecutable(logger.NewLogger(cfg), "numcheck")
			logger.SetDefault(a.log)
			return nil
		},
		RunE: a.runDemo,
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{err}
	})

	rootCmd.PersistentFlags().StringVar(&a.metricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this file after the command runs")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error (default from LOG_LEVEL, else info)")

	rootCmd.AddGroup(
		&cobra.Group{ID: "checks", Title: "Checks:"},
		&cobra.Group{ID: "history", Title: "History:"},
	)
	rootCmd.AddCommand(
		newDemoCmd(a),
		newAbsCmd(a),
		newPalindromeCmd(a),
		newAssertCmd(a),
		newSuiteCmd(a),
		newHistoryCmd(a),
	)

	return rootCmd
}

// newChecker builds a Checker writing to the command's output, recording to
// the repository named by flags when any persistence flag is set
func (a *app) newChecker(cmd *cobra.Command, flags *PersistenceFlags) (*check.Checker, error) {
	opts := []check.Option{
		check.WithLogger(a.log),
		check.WithMetrics(a.metrics),
	}

	if flags != nil && flags.RepositoryConfig().IsPersistent() {
		repo, err := repository.NewRepository(cmd.Context(), flags.RepositoryConfig())
		if err != nil {
			return nil, err
		}
		opts = append(opts, check.WithRepository(repo))
	}

	return check.NewChecker(cmd.OutOrStdout(), opts...), nil
}

// Run executes the command tree with args and returns the process exit code.
// Errors are written to stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := newApp()
	rootCmd := newRootCmd(a)
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	executed, err := rootCmd.ExecuteContextC(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if ExitCode(err) == exitUsage && executed != nil {
			fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", executed.CommandPath())
		}
	}

	if a.metricsTextfile != "" {
		if werr := a.metrics.WriteTextfile(a.metricsTextfile); werr != nil {
			fmt.Fprintf(stderr, "Error: failed to write metrics: %v\n", werr)
			if err == nil {
				err = werr
			}
		}
	}

	return ExitCode(err)
}

// Execute runs the root command against the process arguments
func Execute() int {
	return Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}
