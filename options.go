package coverart

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/simonhull/coverart/internal/types"
)

// Option configures extraction.
//
// Options use the functional options pattern:
//
//	img, err := coverart.Lookup(data, "song.mp3",
//	    coverart.WithMaxImageSize(10*1024*1024),
//	    coverart.WithLogger(logger),
//	)
type Option func(*options)

type options struct {
	fixedMIMEType string      // Reported MIME type override ("" = detect)
	maxImageSize  int         // Maximum payload size in bytes (0 = no limit)
	concurrency   int         // ExtractMany worker limit
	logger        *zap.Logger // Receives decline reasons at debug level
	progress      func(Result)
}

func defaultOptions() *options {
	return &options{
		concurrency: runtime.NumCPU(),
		logger:      zap.NewNop(),
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) extract() types.ExtractOptions {
	return types.ExtractOptions{
		FixedMIMEType: o.fixedMIMEType,
		MaxImageSize:  o.maxImageSize,
	}
}

// WithFixedMIMEType reports mime for every image regardless of what the tag
// declares or the payload contains. DeclaredMIMEType is left untouched.
//
// Use "image/jpeg" to match hosts that assume every cover is a JPEG.
func WithFixedMIMEType(mime string) Option {
	return func(o *options) {
		o.fixedMIMEType = mime
	}
}

// WithMaxImageSize rejects pictures larger than bytes with ErrImageTooLarge.
//
// Default is 0 (no limit).
func WithMaxImageSize(bytes int) Option {
	return func(o *options) {
		o.maxImageSize = bytes
	}
}

// WithLogger sets the logger that records why an extraction found no image.
// Default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConcurrency limits how many files ExtractMany processes at once.
// Values below 1 select runtime.NumCPU().
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.NumCPU()
		}
		o.concurrency = n
	}
}

// WithProgress registers fn to be called by ExtractMany as each file
// finishes. Calls may come from several goroutines at once.
func WithProgress(fn func(Result)) Option {
	return func(o *options) {
		o.progress = fn
	}
}
