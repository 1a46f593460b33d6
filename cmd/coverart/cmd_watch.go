package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/simonhull/coverart"
	"github.com/simonhull/coverart/internal/watch"
)

var watchOut string

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Extract covers of MP3 files as they appear in a directory",
	Long: `Watches <dir> and writes the cover of every MP3 file created or rewritten
there, once the file has been quiet for watch.debounce. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "output directory (default extract.out)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	out := outputDir(cmd, watchOut)
	if err := os.MkdirAll(out, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create output directory `%v`", out)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(args[0], cfg.Watch.Debounce, logger, coverHandler(cmd, out))
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return err
	}
	defer w.Stop()

	fmt.Fprintf(cmd.OutOrStdout(), "watching %s, writing covers to %s\n", args[0], out)
	<-ctx.Done()

	stats := w.Stats()
	logger.Info("watch stopped", zap.Int("events", stats.Events), zap.Int("handled", stats.Handled))
	return nil
}

// coverHandler extracts and writes the cover of each settled file.
func coverHandler(cmd *cobra.Command, out string) watch.Handler {
	opts := extractOptions()
	return func(ctx context.Context, path string) {
		img, err := coverart.ExtractFile(ctx, path, opts...)
		if err != nil {
			logger.Info("no cover", zap.String("path", path), zap.Error(err))
			return
		}
		dst, err := writeCover(out, path, img)
		if err != nil {
			logger.Error("failed to write cover", zap.String("path", path), zap.Error(err))
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%s)\n", path, dst, img)
	}
}
