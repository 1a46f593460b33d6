package id3

import "unicode/utf16"

// ID3v2 text encodings.
const (
	encodingISO88591 = 0
	encodingUTF16    = 1 // with BOM
	encodingUTF16BE  = 2 // ID3v2.4
	encodingUTF8     = 3 // ID3v2.4
)

// terminatorWidth returns the size of the null terminator for the encoding.
func terminatorWidth(encoding byte) int {
	switch encoding {
	case encodingUTF16, encodingUTF16BE:
		return 2
	default:
		return 1
	}
}

// decodeText decodes text based on the ID3v2 encoding byte.
func decodeText(data []byte, encoding byte) string {
	if len(data) == 0 {
		return ""
	}

	switch encoding {
	case encodingISO88591:
		return decodeLatin1(data)
	case encodingUTF16:
		return decodeUTF16(data)
	case encodingUTF16BE:
		return decodeUTF16BE(data)
	default:
		// UTF-8 and unknown encodings are returned as-is
		return string(data)
	}
}

func decodeLatin1(data []byte) string {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}

// decodeUTF16 decodes UTF-16 with an optional BOM; big-endian without one.
func decodeUTF16(data []byte) string {
	if len(data) >= 2 {
		if data[0] == 0xFF && data[1] == 0xFE {
			return decodeUTF16LE(data[2:])
		}
		if data[0] == 0xFE && data[1] == 0xFF {
			return decodeUTF16BE(data[2:])
		}
	}
	return decodeUTF16BE(data)
}

func decodeUTF16LE(data []byte) string {
	u16 := make([]uint16, len(data)/2)
	for i := range u16 {
		u16[i] = uint16(data[i*2]) | uint16(data[i*2+1])<<8
	}
	return string(utf16.Decode(u16))
}

func decodeUTF16BE(data []byte) string {
	u16 := make([]uint16, len(data)/2)
	for i := range u16 {
		u16[i] = uint16(data[i*2])<<8 | uint16(data[i*2+1])
	}
	return string(utf16.Decode(u16))
}
