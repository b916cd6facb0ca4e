package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/conneroisu/slink/internal/config"
	"github.com/conneroisu/slink/internal/script"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:     "run <script.yaml>",
	Aliases: []string{"r"},
	Short:   "Execute a YAML demo script",
	Long: `Execute a YAML demo script against the list engine and render
the per-step outcomes.

A script names an initial list and a sequence of steps:

  name: walkthrough
  initial: [10, 20, 30, 40, 50]
  steps:
    - op: remove-value
      value: 30
    - op: insert-at
      position: 2
      value: 99
    - op: first-common
      values: [2, 4, 5]
    - op: length

Absent values and out-of-range positions are reported as step outcomes,
not failures of the run.`,
	Args: cobra.ExactArgs(1),
	RunE: runRunCommand,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRunCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	s, err := script.Load(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := cfg.Logger()
	timer := logger.StartOperation("run-script")

	result, err := script.NewRunner(logger).Run(ctx, s)
	if err != nil {
		timer.EndWithError(ctx, err)
		return err
	}
	timer.End(ctx)

	script.Render(cmd.OutOrStdout(), result, cfg.Output.Format)

	return nil
}
