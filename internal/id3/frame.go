package id3

import (
	binutil "github.com/simonhull/coverart/internal/binary"
	"github.com/simonhull/coverart/internal/types"
)

const frameHeaderSize = 10

// FrameHeader describes one frame inside a tag.
type FrameHeader struct {
	ID     string // 4-character frame ID (e.g. "TIT2", "APIC")
	Size   uint32 // Body size excluding the 10-byte frame header
	Flags  uint16
	Offset int64 // Offset of the frame header within the buffer
}

// readFrameHeader reads id, size and flags. Sizes are big-endian; in an
// ID3v2.4 tag a synchsafe reading is used instead when it is the one that
// lands on the next frame or the end of the tag.
func readFrameHeader(c *binutil.Cursor, version byte, tagEnd int) (FrameHeader, error) {
	fh := FrameHeader{Offset: c.Offset()}

	id, err := c.String(4, "frame id")
	if err != nil {
		return fh, err
	}
	fh.ID = id

	fh.Size, err = binutil.Next[uint32](c, "frame size")
	if err != nil {
		return fh, err
	}

	fh.Flags, err = binutil.Next[uint16](c, "frame flags")
	if err != nil {
		return fh, err
	}

	if version == 4 {
		fh.Size = v4FrameSize(c, fh.Size, tagEnd)
	}
	return fh, nil
}

// v4FrameSize picks between the big-endian and synchsafe readings of raw.
// c sits at the start of the frame body.
func v4FrameSize(c *binutil.Cursor, raw uint32, tagEnd int) uint32 {
	if raw&0x80808080 != 0 {
		return raw
	}
	synchsafe := binutil.DecodeSynchsafe([]byte{byte(raw >> 24), byte(raw >> 16), byte(raw >> 8), byte(raw)})
	if synchsafe == raw {
		return raw
	}
	if !landsOnFrame(c, raw, tagEnd) && landsOnFrame(c, synchsafe, tagEnd) {
		return synchsafe
	}
	return raw
}

// landsOnFrame reports whether skipping size bytes from c ends on a frame
// boundary: tagEnd itself, trailing zero padding or a plausible frame id.
func landsOnFrame(c *binutil.Cursor, size uint32, tagEnd int) bool {
	next := c.Pos() + int(size)
	if int(size) < 0 || next > tagEnd {
		return false
	}
	if next == tagEnd {
		return true
	}
	if next+frameHeaderSize <= tagEnd {
		if id, ok := c.Peek(int(size), 4); ok && validFrameID(id) {
			return true
		}
	}
	// Padding runs to the end of the tag
	rest, ok := c.Peek(int(size), tagEnd-next)
	return ok && allZero(rest)
}

func validFrameID(id []byte) bool {
	for _, b := range id {
		if (b < 'A' || b > 'Z') && (b < '0' || b > '9') {
			return false
		}
	}
	return true
}

func allZero(b []byte) bool {
	for _, x := range b {
		if x != 0 {
			return false
		}
	}
	return true
}

// walkFrames calls fn for every frame between the cursor and tagEnd. fn gets
// a cursor limited to the frame body. Walking ends at tagEnd, when fewer than
// 10 bytes remain, or when fn asks to stop. Zero-filled padding reads as
// empty frames and is stepped over 10 bytes at a time.
func walkFrames(c *binutil.Cursor, h Header, tagEnd int, fn func(FrameHeader, *binutil.Cursor) (bool, error)) error {
	for c.Pos() < tagEnd && c.Remaining() >= frameHeaderSize {
		fh, err := readFrameHeader(c, h.Version, tagEnd)
		if err != nil {
			return &types.FrameError{Offset: fh.Offset, Reason: err.Error(), Err: types.ErrMalformedFrame}
		}

		body, err := c.Sub(int(fh.Size), "frame body")
		if err != nil {
			return &types.FrameError{Frame: fh.ID, Offset: fh.Offset, Reason: err.Error(), Err: types.ErrMalformedFrame}
		}

		stop, err := fn(fh, body)
		if err != nil || stop {
			return err
		}
	}
	return nil
}

// Frames lists the frame headers of the tag at the start of buf, leaving out
// zero-filled padding.
//
// The frames read before a structural error are returned along with it.
func Frames(buf []byte) (Header, []FrameHeader, error) {
	c := binutil.NewCursor(buf, "tag")
	h, err := readHeader(c)
	if err != nil {
		return Header{}, nil, err
	}
	if err := skipExtendedHeader(c, h); err != nil {
		return h, nil, err
	}

	var frames []FrameHeader
	err = walkFrames(c, h, tagEnd(h, len(buf)), func(fh FrameHeader, _ *binutil.Cursor) (bool, error) {
		if fh.ID[0] != 0 {
			frames = append(frames, fh)
		}
		return false, nil
	})
	return h, frames, err
}

// tagEnd clamps the declared tag end to the buffer.
func tagEnd(h Header, bufLen int) int {
	return int(min(h.End(), int64(bufLen)))
}
