package coverart_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var jpegPayload = []byte{0xFF, 0xD8, 0xFF, 0xD9}

// buildMP3 builds an ID3v2.3 tag with the given frames followed by a short
// run of MPEG frame bytes.
func buildMP3(frames ...[]byte) []byte {
	var body []byte
	for _, f := range frames {
		body = append(body, f...)
	}

	size := len(body)
	data := []byte{
		'I', 'D', '3', 0x03, 0x00, 0x00,
		byte(size>>21) & 0x7F, byte(size>>14) & 0x7F, byte(size>>7) & 0x7F, byte(size) & 0x7F,
	}
	data = append(data, body...)
	return append(data, 0xFF, 0xFB, 0x90, 0x00, 0x00, 0x00, 0x00, 0x00)
}

func frame(id string, body []byte) []byte {
	data := []byte(id)
	data = binary.BigEndian.AppendUint32(data, uint32(len(body)))
	data = append(data, 0x00, 0x00)
	return append(data, body...)
}

// pictureFrame builds an APIC frame with ISO-8859-1 encoding, front cover
// type and an empty description.
func pictureFrame(mime string, payload []byte) []byte {
	body := []byte{0x00}
	body = append(body, mime...)
	body = append(body, 0x00, 0x03, 0x00)
	return frame("APIC", append(body, payload...))
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}
