package coverart

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	binutil "github.com/simonhull/coverart/internal/binary"
	"github.com/simonhull/coverart/internal/registry"
)

const probeSize = 10

// ExtractFile returns the first embedded image of the file at path. The
// path doubles as the media kind hint.
//
// Only the metadata prefix of the file is read; audio data is never loaded.
//
// Example:
//
//	img, err := coverart.ExtractFile(ctx, "song.mp3")
//	if err != nil {
//		return err
//	}
//	os.WriteFile("cover"+img.Extension(), img.Data, 0644)
func ExtractFile(ctx context.Context, path string, opts ...Option) (*Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o := applyOptions(opts)
	img, err := extractFile(path, o)
	if err != nil {
		o.logger.Debug("no embedded image", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	return img, nil
}

func extractFile(path string, o *options) (*Image, error) {
	ex := registry.Get(FormatFromKind(path))
	if ex == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	buf, err := readMetadata(f, stat.Size(), path, ex)
	if err != nil {
		return nil, err
	}

	img, err := ex.ExtractImage(buf, o.extract())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// readMetadata loads the part of the file that can hold an embedded image.
// Extractors that report a tag length get only that prefix; others get the
// whole file.
func readMetadata(r io.ReaderAt, size int64, path string, ex registry.ImageExtractor) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}

	sr := binutil.NewSafeReader(r, size, path)

	tl, ok := ex.(registry.TagLengther)
	if !ok || size < probeSize {
		return sr.ReadUpTo(0, size, "file contents")
	}

	header := make([]byte, probeSize)
	if err := sr.ReadAt(header, 0, "tag header"); err != nil {
		return nil, err
	}

	n, err := tl.TagLength(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sr.ReadUpTo(0, n, "tag")
}

// Result is the outcome of one file in ExtractMany.
type Result struct {
	Path  string
	Image *Image // nil when Err is set
	Err   error
}

// ExtractMany extracts images from many files concurrently.
//
// Files are processed by up to runtime.NumCPU() goroutines (see
// WithConcurrency). Results are returned in the same order as the input
// paths. A file without an image does not fail the batch; its Result carries
// the error. Only context cancellation aborts the whole call.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	results, err := coverart.ExtractMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
func ExtractMany(ctx context.Context, paths []string, opts ...Option) ([]Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	o := applyOptions(opts)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	results := make([]Result, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			img, err := extractFile(path, o)
			if err != nil {
				o.logger.Debug("no embedded image", zap.String("path", path), zap.Error(err))
			}
			results[i] = Result{Path: path, Image: img, Err: err}
			if o.progress != nil {
				o.progress(results[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
