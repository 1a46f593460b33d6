package id3

import (
	"bytes"
	"strings"
)

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// normalizeMIME maps legacy and shorthand MIME markers to media types.
// An empty result means the declared value carries no usable type.
func normalizeMIME(declared string) string {
	switch strings.ToLower(strings.TrimSpace(declared)) {
	case "jpg", "jpeg", "image/jpg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "", "-->", "image/":
		return ""
	default:
		return strings.ToLower(strings.TrimSpace(declared))
	}
}

// detectMIMEType detects the image type from magic bytes.
func detectMIMEType(data []byte) string {
	switch {
	case len(data) < 4:
		return ""
	case data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return "image/jpeg"
	case bytes.HasPrefix(data, pngSignature[:4]):
		return "image/png"
	case bytes.HasPrefix(data, []byte("GIF")):
		return "image/gif"
	case data[0] == 'B' && data[1] == 'M':
		return "image/bmp"
	case len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		return "image/webp"
	default:
		return ""
	}
}

// imageDimensions extracts width and height from the payload header.
func imageDimensions(data []byte, mimeType string) (int, int) {
	switch mimeType {
	case "image/jpeg":
		return jpegDimensions(data)
	case "image/png":
		return pngDimensions(data)
	default:
		return 0, 0
	}
}

// jpegDimensions reads the first SOF0/SOF1/SOF2 segment:
// FF Cn [2 bytes length] [1 byte precision] [2 bytes height] [2 bytes width]
func jpegDimensions(data []byte) (int, int) {
	for i := 0; i+9 <= len(data); i++ {
		if data[i] != 0xFF {
			continue
		}
		switch data[i+1] {
		case 0xC0, 0xC1, 0xC2:
			height := int(data[i+5])<<8 | int(data[i+6])
			width := int(data[i+7])<<8 | int(data[i+8])
			return width, height
		}
	}
	return 0, 0
}

// pngDimensions reads IHDR: 8-byte signature, then [4 len] [4 "IHDR"] [4 width] [4 height].
func pngDimensions(data []byte) (int, int) {
	if len(data) < 24 || !bytes.Equal(data[:8], pngSignature) {
		return 0, 0
	}
	width := int(data[16])<<24 | int(data[17])<<16 | int(data[18])<<8 | int(data[19])
	height := int(data[20])<<24 | int(data[21])<<16 | int(data[22])<<8 | int(data[23])
	return width, height
}
