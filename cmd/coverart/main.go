// Command coverart extracts embedded cover art from MP3 files and keeps a
// small playlist of tracks with their covers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/simonhull/coverart"
	"github.com/simonhull/coverart/internal/config"
)

var (
	// Global flags
	cfgFile  string
	logLevel string

	v      = config.New()
	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "coverart",
	Short: "Extract embedded cover art from MP3 files",
	Long: `coverart reads the ID3v2 tag at the start of an MP3 file and returns the
first attached picture (APIC frame), without decoding any audio.

Settings come from an optional YAML file (--config) and COVERART_* environment
variables, e.g. COVERART_PLAYLIST_DB=/var/lib/coverart/playlist.db.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(v, cfgFile); err != nil {
			return err
		}
		logger, err = newLogger(cfg)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func newLogger(c *config.Config) (*zap.Logger, error) {
	lvl, err := c.Log.ZapLevel()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

// extractOptions maps the configuration onto library options.
func extractOptions() []coverart.Option {
	return []coverart.Option{
		coverart.WithLogger(logger),
		coverart.WithFixedMIMEType(cfg.Extract.FixedMIME),
		coverart.WithMaxImageSize(cfg.Extract.MaxImageSize),
		coverart.WithConcurrency(cfg.Extract.Concurrency),
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	if err := v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(extractCmd, inspectCmd, watchCmd, playlistCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
