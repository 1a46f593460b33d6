// Package id3 reads ID3v2 tags from an in-memory buffer and extracts the
// attached picture (APIC) frame.
package id3

import (
	binutil "github.com/simonhull/coverart/internal/binary"
	"github.com/simonhull/coverart/internal/types"
)

const (
	// HeaderSize is the fixed size of the ID3v2 tag header.
	HeaderSize = 10

	signature = "ID3"

	flagExtendedHeader = 0x40
)

// Header represents an ID3v2 tag header.
type Header struct {
	Version  byte   // Major version, informational except for 4
	Revision byte   // Minor version
	Flags    byte   // Header flags
	Size     uint32 // Tag size excluding the 10-byte header (synchsafe on disk)
}

// HasExtendedHeader reports whether an extended header follows the tag header.
func (h Header) HasExtendedHeader() bool {
	return h.Flags&flagExtendedHeader != 0
}

// End returns the offset one past the declared end of the tag.
func (h Header) End() int64 {
	return HeaderSize + int64(h.Size)
}

// ParseHeader decodes a tag header from the first 10 bytes of b.
//
// It fails with types.ErrNoTag when b is too short or the signature is
// absent. The version bytes are reported but not validated.
func ParseHeader(b []byte) (Header, error) {
	c := binutil.NewCursor(b, "ID3v2 header")
	return readHeader(c)
}

func readHeader(c *binutil.Cursor) (Header, error) {
	raw, err := c.Bytes(HeaderSize, "ID3v2 header")
	if err != nil {
		return Header{}, &types.FrameError{Reason: "buffer shorter than tag header", Err: types.ErrNoTag}
	}

	if string(raw[0:3]) != signature {
		return Header{}, &types.FrameError{Reason: "missing ID3 signature", Err: types.ErrNoTag}
	}

	h := Header{
		Version:  raw[3],
		Revision: raw[4],
		Flags:    raw[5],
		Size:     binutil.DecodeSynchsafe(raw[6:10]),
	}

	return h, nil
}

// skipExtendedHeader positions c at the first frame.
func skipExtendedHeader(c *binutil.Cursor, h Header) error {
	if !h.HasExtendedHeader() {
		return nil
	}

	start := c.Pos()
	var err error
	var n uint32
	if h.Version == 4 {
		// ID3v2.4: synchsafe size that includes the size field itself
		if n, err = c.Synchsafe("extended header size"); err == nil {
			err = c.Seek(start+int(n), "extended header")
		}
	} else {
		// ID3v2.3: big-endian size that excludes the size field
		if n, err = binutil.Next[uint32](c, "extended header size"); err == nil {
			err = c.Seek(start+4+int(n), "extended header")
		}
	}

	if err != nil {
		return &types.FrameError{Offset: int64(start), Reason: err.Error(), Err: types.ErrMalformedFrame}
	}
	return nil
}
