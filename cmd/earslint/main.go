package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"earslint/internal/core"
)

// version is set via -ldflags at build time.
var version = "(devel)"

// errNonConforming fails --strict runs without printing usage.
var errNonConforming = errors.New("requirements do not conform")

// app carries state shared by all subcommands.
type app struct {
	cfg     *core.Config
	logger  core.Logger
	verbose bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "earslint",
		Short: "Classify requirements against EARS templates",
		Long: `earslint classifies requirement sentences into EARS (Easy Approach to
Requirements Syntax) categories and flags punctuation and style issues.

Each sentence is matched against a fixed, ordered list of templates and gets
exactly one category, or DOES NOT MEET.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := core.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if a.verbose {
				cfg.LogLevel = "debug"
			}
			a.cfg = cfg
			a.logger = core.NewLoggerWithWriter(cfg.LogLevel, cmd.ErrOrStderr())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newClassifyCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newDescribeCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
