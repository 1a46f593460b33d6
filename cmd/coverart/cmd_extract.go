package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/simonhull/coverart"
)

var extractOut string

var extractCmd = &cobra.Command{
	Use:   "extract <file>...",
	Short: "Write the embedded cover of each file to the output directory",
	Long: `Writes the first attached picture of each MP3 file as <name><ext>, where
<name> is the audio file name without extension and <ext> follows the image type.

Files without a cover are reported and skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "output directory (default extract.out)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	out := outputDir(cmd, extractOut)
	if err := os.MkdirAll(out, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create output directory `%v`", out)
	}

	opts := extractOptions()
	if len(args) > 1 {
		bar := progressbar.NewOptions(len(args),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("extracting"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
		opts = append(opts, coverart.WithProgress(func(coverart.Result) { _ = bar.Add(1) }))
	}

	results, err := coverart.ExtractMany(cmd.Context(), args, opts...)
	if err != nil {
		return errors.Wrap(err, "extraction aborted")
	}

	var written, missing int
	for _, r := range results {
		if r.Err != nil {
			missing++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: no cover (%v)\n", r.Path, r.Err)
			continue
		}
		dst, err := writeCover(out, r.Path, r.Image)
		if err != nil {
			return err
		}
		written++
		logger.Debug("cover written", zap.String("src", r.Path), zap.String("dst", dst))
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%s)\n", r.Path, dst, r.Image)
	}

	if written == 0 {
		return errors.Newf("no covers found in %d file(s)", missing)
	}
	return nil
}

// outputDir prefers an explicit --out over the configured directory.
func outputDir(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("out") && flagValue != "" {
		return flagValue
	}
	if cfg != nil && cfg.Extract.Out != "" {
		return cfg.Extract.Out
	}
	return "."
}

// writeCover saves img in dir, named after the audio file.
func writeCover(dir, src string, img *coverart.Image) (string, error) {
	base := filepath.Base(src)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	dst := filepath.Join(dir, name+img.Extension())
	if err := os.WriteFile(dst, img.Data, 0o644); err != nil {
		return "", errors.Wrapf(err, "failed to write `%v`", dst)
	}
	return dst, nil
}
