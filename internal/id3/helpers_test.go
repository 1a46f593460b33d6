package id3

import "encoding/binary"

var jpegPayload = []byte{0xFF, 0xD8, 0xFF, 0xD9}

func encodeSynchsafe(n int) []byte {
	return []byte{
		byte(n>>21) & 0x7F,
		byte(n>>14) & 0x7F,
		byte(n>>7) & 0x7F,
		byte(n) & 0x7F,
	}
}

// buildTag assembles an ID3v2 tag whose declared size covers exactly the
// given frames.
func buildTag(version byte, frames ...[]byte) []byte {
	var body []byte
	for _, f := range frames {
		body = append(body, f...)
	}
	return buildTagWithSize(version, len(body), body)
}

func buildTagWithSize(version byte, size int, body []byte) []byte {
	data := []byte{'I', 'D', '3', version, 0x00, 0x00}
	data = append(data, encodeSynchsafe(size)...)
	return append(data, body...)
}

// frame builds an ID3v2.3 frame (big-endian size).
func frame(id string, body []byte) []byte {
	return frameWithSize(id, len(body), body)
}

func frameWithSize(id string, size int, body []byte) []byte {
	data := []byte(id)
	data = binary.BigEndian.AppendUint32(data, uint32(size))
	data = append(data, 0x00, 0x00)
	return append(data, body...)
}

// frameV4 builds an ID3v2.4 frame (synchsafe size).
func frameV4(id string, body []byte) []byte {
	data := []byte(id)
	data = append(data, encodeSynchsafe(len(body))...)
	data = append(data, 0x00, 0x00)
	return append(data, body...)
}

func apicBody(encoding byte, mime string, pictureType byte, desc []byte, payload []byte) []byte {
	body := []byte{encoding}
	body = append(body, mime...)
	body = append(body, 0x00, pictureType)
	body = append(body, desc...)
	return append(body, payload...)
}

// simpleAPIC is the common ISO-8859-1 picture frame with an empty description.
func simpleAPIC(mime string, payload []byte) []byte {
	return frame(PictureFrameID, apicBody(encodingISO88591, mime, byte(3), []byte{0x00}, payload))
}

// exact returns b with capacity trimmed to its length, so any attempt to
// reslice past the end panics.
func exact(b []byte) []byte {
	return b[:len(b):len(b)]
}
