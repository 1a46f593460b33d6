package binary

import (
	"bytes"
	"encoding/binary"

	"github.com/simonhull/coverart/internal/types"
)

// Cursor reads sequentially from an immutable byte slice.
//
// Every read is bounds-checked: a read that would cross the end of the
// buffer fails with *types.OutOfBoundsError and leaves the position unchanged.
type Cursor struct {
	buf  []byte
	pos  int
	base int64 // absolute offset of buf[0], for error messages
	name string
}

// NewCursor creates a cursor at the start of buf.
func NewCursor(buf []byte, name string) *Cursor {
	return &Cursor{buf: buf, name: name}
}

// Offset returns the absolute offset of the next byte to be read.
func (c *Cursor) Offset() int64 {
	return c.base + int64(c.pos)
}

// Pos returns the position relative to the start of this cursor's buffer.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the length of the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.buf)
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

func (c *Cursor) outOfBounds(n int, what string) error {
	return &types.OutOfBoundsError{
		Path:   c.name,
		What:   what,
		Offset: c.Offset(),
		Length: n,
		Size:   c.base + int64(len(c.buf)),
	}
}

// Seek moves to an absolute position within the buffer. pos == Len() is
// allowed and leaves the cursor exhausted.
func (c *Cursor) Seek(pos int, what string) error {
	if pos < 0 || pos > len(c.buf) {
		return &types.OutOfBoundsError{Path: c.name, What: what, Offset: c.base + int64(pos), Size: c.base + int64(len(c.buf))}
	}
	c.pos = pos
	return nil
}

// Skip advances by n bytes.
func (c *Cursor) Skip(n int, what string) error {
	if n < 0 || n > c.Remaining() {
		return c.outOfBounds(n, what)
	}
	c.pos += n
	return nil
}

// Bytes returns the next n bytes and advances past them. The returned slice
// aliases the buffer; callers that keep it must copy.
func (c *Cursor) Bytes(n int, what string) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, c.outOfBounds(n, what)
	}
	b := c.buf[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return b, nil
}

// String reads n bytes as a string.
func (c *Cursor) String(n int, what string) (string, error) {
	b, err := c.Bytes(n, what)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Sub carves the next n bytes into a child cursor and advances past them.
// Offsets reported by the child stay absolute.
func (c *Cursor) Sub(n int, what string) (*Cursor, error) {
	start := c.Offset()
	b, err := c.Bytes(n, what)
	if err != nil {
		return nil, err
	}
	return &Cursor{buf: b, base: start, name: c.name}, nil
}

// Peek returns n bytes starting off bytes past the current position without
// advancing. ok is false when that range leaves the buffer.
func (c *Cursor) Peek(off, n int) (b []byte, ok bool) {
	start := c.pos + off
	if off < 0 || n < 0 || start > len(c.buf) || n > len(c.buf)-start {
		return nil, false
	}
	return c.buf[start : start+n : start+n], true
}

// Rest returns all unread bytes and exhausts the cursor.
func (c *Cursor) Rest() []byte {
	b := c.buf[c.pos:len(c.buf):len(c.buf)]
	c.pos = len(c.buf)
	return b
}

// UntilNull returns the bytes before the next NUL terminator of the given
// width and advances past the terminator. Two-byte terminators are matched
// only at even offsets from the current position.
func (c *Cursor) UntilNull(width int, what string) ([]byte, error) {
	rest := c.buf[c.pos:]
	idx := -1

	switch width {
	case 2:
		for i := 0; i+1 < len(rest); i += 2 {
			if rest[i] == 0 && rest[i+1] == 0 {
				idx = i
				break
			}
		}
	default:
		width = 1
		idx = bytes.IndexByte(rest, 0)
	}

	if idx < 0 {
		return nil, c.outOfBounds(len(rest)+width, what)
	}

	b := rest[:idx:idx]
	c.pos += idx + width
	return b, nil
}

// Synchsafe reads a 4-byte synchsafe integer.
func (c *Cursor) Synchsafe(what string) (uint32, error) {
	b, err := c.Bytes(4, what)
	if err != nil {
		return 0, err
	}
	return DecodeSynchsafe(b), nil
}

// Next reads a big-endian value of type T and advances past it.
func Next[T uint8 | uint16 | uint32 | uint64](c *Cursor, what string) (T, error) {
	var zero T
	var size int

	switch any(zero).(type) {
	case uint8:
		size = 1
	case uint16:
		size = 2
	case uint32:
		size = 4
	case uint64:
		size = 8
	}

	b, err := c.Bytes(size, what)
	if err != nil {
		return zero, err
	}

	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(b[0])
	case uint16:
		val = T(binary.BigEndian.Uint16(b))
	case uint32:
		val = T(binary.BigEndian.Uint32(b))
	case uint64:
		val = T(binary.BigEndian.Uint64(b))
	}

	return val, nil
}
