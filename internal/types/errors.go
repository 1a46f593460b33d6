package types

import (
	"errors"
	"fmt"
)

// Reasons an extraction can decline. Public callers usually collapse all of
// them into "no image"; they stay distinct for logging and tests.
var (
	// ErrUnsupportedFormat means the media kind hint does not name a format
	// with an extractor. The buffer is not read.
	ErrUnsupportedFormat = errors.New("unsupported media kind")

	// ErrNoTag means the buffer does not start with a recognizable tag header.
	ErrNoTag = errors.New("no tag present")

	// ErrMalformedFrame means a frame's sub-fields could not be located
	// inside the buffer.
	ErrMalformedFrame = errors.New("malformed frame")

	// ErrNotFound means the tag is well formed but carries no picture frame.
	ErrNotFound = errors.New("no embedded image")

	// ErrImageTooLarge means a picture was found but exceeds the configured limit.
	ErrImageTooLarge = errors.New("embedded image exceeds size limit")
)

// FrameError locates a structural problem inside a tag.
type FrameError struct {
	Frame  string // Frame ID, empty for header-level problems
	Reason string
	Offset int64
	Err    error // One of the sentinels above
}

func (e *FrameError) Error() string {
	if e.Frame == "" {
		return fmt.Sprintf("%v at offset %d: %s", e.Err, e.Offset, e.Reason)
	}
	return fmt.Sprintf("%v: frame %s at offset %d: %s", e.Err, e.Frame, e.Offset, e.Reason)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

// OutOfBoundsError is returned when attempting to read beyond buffer or file bounds.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}
