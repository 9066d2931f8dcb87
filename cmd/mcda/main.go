// Command mcda evaluates decision models: it loads a TOML model document,
// runs Pareto filtering and t-ordering, and can render the importance DAG
// or serve the evaluator over HTTP. Generalized from the teacher/pack's
// cobra-root-plus-charmbracelet/log CLI shape (see
// matzehuels-stacktower/internal/cli/cli.go: a CLI struct carrying a
// *log.Logger, RootCommand wiring subcommands, a --verbose flag toggling
// log level).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var verbose bool

	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           charmlog.InfoLevel,
	})

	root := &cobra.Command{
		Use:          "mcda",
		Short:        "mcda evaluates multi-criteria decision models",
		Long:         "mcda loads a decision model (criteria, alternatives, importance preferences) and reduces it via Pareto filtering and t-ordering.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logger.SetLevel(charmlog.DebugLevel)
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newEvaluateCmd(logger))
	root.AddCommand(newGraphCmd(logger))
	root.AddCommand(newServeCmd(logger))

	return root.ExecuteContext(ctx)
}
