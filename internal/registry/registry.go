// Package registry maps audio formats to their embedded-image extractors.
package registry

import (
	"sync"

	"github.com/simonhull/coverart/internal/types"
)

// ImageExtractor is the interface all format extractors implement.
type ImageExtractor interface {
	// ExtractImage returns the first embedded image in a complete file buffer.
	ExtractImage(buf []byte, opts types.ExtractOptions) (*types.Image, error)
}

// TagLengther is an optional interface for extractors whose metadata sits in
// a prefix of the file. Given the first 10 bytes it reports the prefix length.
type TagLengther interface {
	TagLength(header []byte) (int64, error)
}

var (
	mu         sync.RWMutex
	extractors = make(map[types.Format]ImageExtractor)
)

// Register registers an extractor for a format.
// This is called by format packages during initialization (init functions).
func Register(format types.Format, ex ImageExtractor) {
	mu.Lock()
	defer mu.Unlock()
	extractors[format] = ex
}

// Get returns the extractor for a given format.
// Returns nil if no extractor is registered for the format.
func Get(format types.Format) ImageExtractor {
	mu.RLock()
	defer mu.RUnlock()
	return extractors[format]
}
