package id3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/coverart/internal/types"
)

func TestParseHeader(t *testing.T) {
	h, err := ParseHeader([]byte{'I', 'D', '3', 0x04, 0x00, 0x40, 0x00, 0x00, 0x02, 0x01, 0xFF})
	require.NoError(t, err)
	assert.Equal(t, byte(4), h.Version)
	assert.Equal(t, uint32(257), h.Size)
	assert.True(t, h.HasExtendedHeader())
	assert.Equal(t, int64(267), h.End())
}

func TestParseHeader_AnyVersion(t *testing.T) {
	for _, version := range []byte{0, 2, 5} {
		h, err := ParseHeader([]byte{'I', 'D', '3', version, 0x01, 0x00, 0x00, 0x00, 0x00, 0x0A})
		require.NoError(t, err)
		assert.Equal(t, version, h.Version)
		assert.Equal(t, byte(1), h.Revision)
		assert.Equal(t, int64(20), h.End())
	}
}

func TestParseHeader_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"too short", []byte("ID3")},
		{"bad signature", []byte("ID4\x03\x00\x00\x00\x00\x00\x00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHeader(tt.data)
			assert.ErrorIs(t, err, types.ErrNoTag)
		})
	}
}

func TestFrames(t *testing.T) {
	data := buildTag(3,
		frame("TIT2", []byte{0x00, 'a', 'b'}),
		frame("TPE1", []byte{0x00, 'c'}),
		simpleAPIC("image/jpeg", jpegPayload),
	)

	h, frames, err := Frames(data)
	require.NoError(t, err)
	assert.Equal(t, byte(3), h.Version)

	ids := make([]string, len(frames))
	for i, f := range frames {
		ids[i] = f.ID
	}
	assert.Equal(t, []string{"TIT2", "TPE1", "APIC"}, ids)
	assert.Equal(t, uint32(3), frames[0].Size)
	assert.Equal(t, int64(23), frames[1].Offset)
}

func TestFrames_PartialOnOverrun(t *testing.T) {
	data := buildTagWithSize(3, 200, append(
		frame("TIT2", []byte{0x00, 'a'}),
		frameWithSize("TPE1", 500, []byte{0x00})...,
	))

	_, frames, err := Frames(data)
	assert.ErrorIs(t, err, types.ErrMalformedFrame)
	require.Len(t, frames, 1)
	assert.Equal(t, "TIT2", frames[0].ID)
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		encoding byte
		want     string
	}{
		{"latin1", []byte{'c', 0xE9}, encodingISO88591, "cé"},
		{"utf16 LE BOM", []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}, encodingUTF16, "hi"},
		{"utf16 BE BOM", []byte{0xFE, 0xFF, 0x00, 'h', 0x00, 'i'}, encodingUTF16, "hi"},
		{"utf16 no BOM", []byte{0x00, 'h'}, encodingUTF16, "h"},
		{"utf16be", []byte{0x00, 'o', 0x00, 'k'}, encodingUTF16BE, "ok"},
		{"utf8", []byte("héllo"), encodingUTF8, "héllo"},
		{"odd trailing byte dropped", []byte{0x00, 'a', 0x00}, encodingUTF16BE, "a"},
		{"empty", nil, encodingUTF8, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeText(tt.data, tt.encoding))
		})
	}
}
