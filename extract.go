package coverart

import (
	"fmt"

	"go.uber.org/zap"

	_ "github.com/simonhull/coverart/internal/id3" // Register MP3 extractor
	"github.com/simonhull/coverart/internal/registry"
)

// Extract returns the first embedded image in data, the complete contents of
// a file whose format is described by kind.
//
// It reports false when kind names an unsupported format (data is not read),
// when there is no tag, when the tag is malformed, or when it holds no image.
// Extract never panics on malformed input.
func Extract(data []byte, kind string, opts ...Option) (*Image, bool) {
	img, err := Lookup(data, kind, opts...)
	return img, err == nil
}

// Lookup is Extract with the reason for a missing image.
//
// The error matches one of ErrUnsupportedFormat, ErrNoTag, ErrMalformedFrame,
// ErrNotFound or ErrImageTooLarge under errors.Is.
func Lookup(data []byte, kind string, opts ...Option) (*Image, error) {
	o := applyOptions(opts)

	img, err := lookup(data, kind, o)
	if err != nil {
		o.logger.Debug("no embedded image",
			zap.String("kind", kind),
			zap.Int("size", len(data)),
			zap.Error(err))
		return nil, err
	}
	return img, nil
}

func lookup(data []byte, kind string, o *options) (*Image, error) {
	ex := registry.Get(FormatFromKind(kind))
	if ex == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, kind)
	}
	return ex.ExtractImage(data, o.extract())
}
