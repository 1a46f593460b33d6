package id3

import (
	"fmt"

	binutil "github.com/simonhull/coverart/internal/binary"
	"github.com/simonhull/coverart/internal/registry"
	"github.com/simonhull/coverart/internal/types"
)

// Extract returns the first attached picture in the ID3v2 tag at the start
// of buf. The returned image owns a copy of its data.
//
// Failures wrap one of types.ErrNoTag, types.ErrMalformedFrame,
// types.ErrNotFound or types.ErrImageTooLarge. buf is never read outside its
// bounds and never modified.
func Extract(buf []byte, opts types.ExtractOptions) (*types.Image, error) {
	c := binutil.NewCursor(buf, "tag")

	h, err := readHeader(c)
	if err != nil {
		return nil, err
	}
	if err := skipExtendedHeader(c, h); err != nil {
		return nil, err
	}

	var found *types.Image
	err = walkFrames(c, h, tagEnd(h, len(buf)), func(fh FrameHeader, body *binutil.Cursor) (bool, error) {
		if fh.ID != PictureFrameID {
			return false, nil
		}

		img, err := parsePicture(body)
		if err != nil {
			return true, &types.FrameError{
				Frame:  fh.ID,
				Offset: fh.Offset,
				Reason: err.Error(),
				Err:    types.ErrMalformedFrame,
			}
		}

		if opts.MaxImageSize > 0 && len(img.Data) > opts.MaxImageSize {
			return true, &types.FrameError{
				Frame:  fh.ID,
				Offset: fh.Offset,
				Reason: fmt.Sprintf("%d bytes, limit %d", len(img.Data), opts.MaxImageSize),
				Err:    types.ErrImageTooLarge,
			}
		}

		found = &img
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, types.ErrNotFound
	}

	data := make([]byte, len(found.Data))
	copy(data, found.Data)
	found.Data = data
	if opts.FixedMIMEType != "" {
		found.MIMEType = opts.FixedMIMEType
	}

	return found, nil
}

// extractor implements registry.ImageExtractor for MP3 files.
type extractor struct{}

func (extractor) ExtractImage(buf []byte, opts types.ExtractOptions) (*types.Image, error) {
	return Extract(buf, opts)
}

// TagLength reports how many leading bytes of a file hold the tag, given its
// first 10 bytes. File readers use it to avoid loading audio data.
func (extractor) TagLength(header []byte) (int64, error) {
	h, err := ParseHeader(header)
	if err != nil {
		return 0, err
	}
	return h.End(), nil
}

func init() {
	registry.Register(types.FormatMP3, extractor{})
}
