package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPictureType_String(t *testing.T) {
	tests := []struct {
		in   PictureType
		want string
	}{
		{PictureOther, "Other"},
		{PictureFrontCover, "Front cover"},
		{PicturePublisherLogotype, "Publisher logotype"},
		{PictureType(42), "PictureType(42)"},
		{PictureType(-1), "PictureType(-1)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.String())
	}
}

func TestImage_String(t *testing.T) {
	img := Image{
		Type:     PictureFrontCover,
		MIMEType: "image/jpeg",
		Data:     make([]byte, 2048),
		Width:    600,
		Height:   600,
	}
	assert.Equal(t, "Front cover (600x600 JPEG, 2KB)", img.String())

	img = Image{Type: PictureOther, MIMEType: "image/x-unknown", Data: make([]byte, 10)}
	assert.Equal(t, "Other (Image, 10B)", img.String())
}

func TestImage_Extension(t *testing.T) {
	assert.Equal(t, ".jpg", Image{MIMEType: "image/jpeg"}.Extension())
	assert.Equal(t, ".png", Image{MIMEType: "image/png"}.Extension())
	assert.Equal(t, ".bin", Image{MIMEType: "application/octet-stream"}.Extension())
}

func TestFrameError_Unwrap(t *testing.T) {
	err := fmt.Errorf("lookup: %w", &FrameError{
		Frame:  "APIC",
		Offset: 20,
		Reason: "MIME type not null-terminated",
		Err:    ErrMalformedFrame,
	})

	assert.True(t, errors.Is(err, ErrMalformedFrame))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "frame APIC at offset 20")

	var fe *FrameError
	assert.True(t, errors.As(err, &fe))
	assert.Equal(t, "APIC", fe.Frame)
}

func TestOutOfBoundsError_Error(t *testing.T) {
	err := &OutOfBoundsError{Path: "song.mp3", What: "frame header", Offset: 100, Length: 10, Size: 105}
	assert.Contains(t, err.Error(), "read of 10 bytes at offset 100 would exceed size 105")

	err = &OutOfBoundsError{Path: "song.mp3", What: "frame header", Offset: 200, Length: 10, Size: 105}
	assert.Contains(t, err.Error(), "offset 200 out of bounds")
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "MP3", FormatMP3.String())
	assert.Equal(t, "Unknown", FormatUnknown.String())
	assert.Equal(t, []string{".mp3"}, FormatMP3.Extensions())
	assert.Contains(t, FormatMP3.MIMETypes(), "audio/mpeg")
	assert.Nil(t, FormatUnknown.MIMETypes())
}
