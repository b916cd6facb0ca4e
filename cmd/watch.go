package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/conneroisu/slink/internal/config"
	"github.com/conneroisu/slink/internal/script"
	"github.com/conneroisu/slink/internal/watcher"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:     "watch <script.yaml>",
	Aliases: []string{"w"},
	Short:   "Re-run a demo script whenever it changes",
	Long: `Watch a YAML demo script and re-run it after every save.

Changes are debounced (watch.debounce, default 300ms) so editors that
write in bursts trigger one run. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatchCommand,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatchCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := cfg.Logger()
	out := cmd.OutOrStdout()

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := script.NewRunner(logger)
	runOnce := func(path string) error {
		s, err := script.Load(path)
		if err != nil {
			return err
		}

		result, err := runner.Run(ctx, s)
		if err != nil {
			return err
		}

		script.Render(out, result, cfg.Output.Format)

		return nil
	}

	// Initial run; a broken script is reported but keeps the watch
	// alive so the next save can fix it.
	if err := runOnce(args[0]); err != nil {
		logger.Warn(ctx, err, "Initial run failed", "script", args[0])
	}

	w, err := watcher.New(args[0], cfg.Watch.Debounce, logger)
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	w.AddHandler(runOnce)
	w.Start(ctx)

	logger.Info(ctx, "Watching script", "script", args[0], "debounce", cfg.Watch.Debounce.String())

	<-ctx.Done()

	return nil
}
