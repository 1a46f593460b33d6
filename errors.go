package coverart

import (
	"github.com/simonhull/coverart/internal/types"
)

// Extraction outcomes, re-exported from internal/types. Test with errors.Is.
var (
	ErrUnsupportedFormat = types.ErrUnsupportedFormat
	ErrNoTag             = types.ErrNoTag
	ErrMalformedFrame    = types.ErrMalformedFrame
	ErrNotFound          = types.ErrNotFound
	ErrImageTooLarge     = types.ErrImageTooLarge
)

// FrameError is an alias to types.FrameError.
// It locates structural problems inside a tag.
type FrameError = types.FrameError

// OutOfBoundsError is an alias to types.OutOfBoundsError.
type OutOfBoundsError = types.OutOfBoundsError
