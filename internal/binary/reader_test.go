package binary

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/coverart/internal/types"
)

// mockReader implements io.ReaderAt for testing.
type mockReader struct {
	data []byte
}

func (m *mockReader) ReadAt(p []byte, off int64) (n int, err error) {
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n = copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func TestSafeReader_ReadAt_Success(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	sr := NewSafeReader(&mockReader{data: data}, int64(len(data)), "test.mp3")

	buf := make([]byte, 2)
	require.NoError(t, sr.ReadAt(buf, 2, "test read"))
	assert.Equal(t, []byte{0x03, 0x04}, buf)
}

func TestSafeReader_ReadAt_OutOfBounds(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	sr := NewSafeReader(&mockReader{data: data}, int64(len(data)), "test.mp3")

	tests := []struct {
		name string
		off  int64
		n    int
	}{
		{"past end", 10, 2},
		{"straddles end", 3, 2},
		{"negative", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sr.ReadAt(make([]byte, tt.n), tt.off, "frame header")
			require.Error(t, err)

			var oob *types.OutOfBoundsError
			require.True(t, errors.As(err, &oob))
			assert.Equal(t, "test.mp3", oob.Path)
			assert.Contains(t, err.Error(), "frame header")
		})
	}
}

func TestSafeReader_ReadUpTo_Clamps(t *testing.T) {
	data := []byte("ID3abcdef")
	sr := NewSafeReader(&mockReader{data: data}, int64(len(data)), "test.mp3")

	got, err := sr.ReadUpTo(3, 100, "tag")
	require.NoError(t, err)
	assert.Equal(t, []byte("abcdef"), got)

	_, err = sr.ReadUpTo(9, 4, "tag")
	assert.Error(t, err)
}

func TestDecodeSynchsafe(t *testing.T) {
	tests := []struct {
		input    []byte
		expected uint32
	}{
		{[]byte{0x00, 0x00, 0x00, 0x00}, 0},
		{[]byte{0x00, 0x00, 0x00, 0x7F}, 127},
		{[]byte{0x00, 0x00, 0x01, 0x00}, 128},
		{[]byte{0x00, 0x00, 0x02, 0x01}, 257},
		{[]byte{0x7F, 0x7F, 0x7F, 0x7F}, 0x0FFFFFFF},
		{[]byte{0xFF, 0xFF, 0xFF, 0xFF}, 0x0FFFFFFF}, // high bits ignored
		{[]byte{0x01, 0x02, 0x03}, 0},                // wrong length
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DecodeSynchsafe(tt.input), "DecodeSynchsafe(%v)", tt.input)
	}
}
