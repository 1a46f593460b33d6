package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/simonhull/coverart/internal/config"
)

var pngPayload = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00}

func frame(id string, body []byte) []byte {
	out := []byte(id)
	out = binary.BigEndian.AppendUint32(out, uint32(len(body)))
	out = append(out, 0x00, 0x00)
	return append(out, body...)
}

func mp3(frames ...[]byte) []byte {
	var body []byte
	for _, f := range frames {
		body = append(body, f...)
	}
	size := len(body)
	out := []byte{'I', 'D', '3', 0x03, 0x00, 0x00,
		byte(size>>21) & 0x7F, byte(size>>14) & 0x7F, byte(size>>7) & 0x7F, byte(size) & 0x7F}
	out = append(out, body...)
	return append(out, 0xFF, 0xFB, 0x90, 0x00)
}

func apic(mime string, payload []byte) []byte {
	body := []byte{0x00}
	body = append(body, mime...)
	body = append(body, 0x00, 0x03)
	body = append(body, "Cover"...)
	body = append(body, 0x00)
	return frame("APIC", append(body, payload...))
}

// setup resets the globals the commands read and returns a command wired to
// fresh output buffers.
func setup(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	logger = zap.NewNop()

	t.Setenv("COVERART_PLAYLIST_DB", filepath.Join(t.TempDir(), "playlist.db"))
	var err error
	cfg, err = config.Load(config.New(), "")
	require.NoError(t, err)

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	return cmd, &out
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func TestExtractCmd(t *testing.T) {
	cmd, out := setup(t)
	src := t.TempDir()
	dst := t.TempDir()
	cfg.Extract.Out = dst

	song := writeFile(t, src, "Track One.mp3", mp3(apic("PNG", pngPayload)))
	bare := writeFile(t, src, "bare.mp3", mp3(frame("TIT2", []byte{0x00, 'x'})))

	require.NoError(t, runExtract(cmd, []string{song, bare}))

	data, err := os.ReadFile(filepath.Join(dst, "Track One.png"))
	require.NoError(t, err)
	assert.Equal(t, pngPayload, data)
	assert.Contains(t, out.String(), "Track One.png")

	_, err = os.Stat(filepath.Join(dst, "bare.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestExtractCmd_NoCovers(t *testing.T) {
	cmd, _ := setup(t)
	cfg.Extract.Out = t.TempDir()

	bare := writeFile(t, t.TempDir(), "bare.mp3", mp3(frame("TIT2", []byte{0x00, 'x'})))
	err := runExtract(cmd, []string{bare})
	assert.ErrorContains(t, err, "no covers found")
}

func TestExtractCmd_FixedMIME(t *testing.T) {
	cmd, _ := setup(t)
	dst := t.TempDir()
	cfg.Extract.Out = dst
	cfg.Extract.FixedMIME = "image/jpeg"

	song := writeFile(t, t.TempDir(), "song.mp3", mp3(apic("image/png", pngPayload)))
	require.NoError(t, runExtract(cmd, []string{song}))

	_, err := os.Stat(filepath.Join(dst, "song.jpg"))
	assert.NoError(t, err)
}

func TestInspectCmd(t *testing.T) {
	cmd, out := setup(t)
	song := writeFile(t, t.TempDir(), "song.mp3", mp3(
		frame("TIT2", []byte{0x00, 'H', 'i'}),
		apic("image/png", pngPayload),
	))

	require.NoError(t, runInspect(cmd, []string{song}))

	s := out.String()
	assert.Contains(t, s, "ID3v2.3.0")
	assert.Contains(t, s, "TIT2 (size: 3, offset: 10")
	assert.Contains(t, s, "APIC (size: ")
	assert.Contains(t, s, "picture: Front cover")
	assert.Contains(t, s, `description "Cover"`)
}

func TestInspectCmd_VersionZeroTag(t *testing.T) {
	cmd, out := setup(t)
	data := mp3(apic("image/png", pngPayload))
	data[3] = 0x00
	song := writeFile(t, t.TempDir(), "old.mp3", data)

	require.NoError(t, runInspect(cmd, []string{song}))
	assert.Contains(t, out.String(), "ID3v2.0.0")
	assert.Contains(t, out.String(), "APIC (size: ")
}

func TestInspectCmd_NoTag(t *testing.T) {
	cmd, _ := setup(t)
	plain := writeFile(t, t.TempDir(), "plain.mp3", []byte{0xFF, 0xFB, 0x90, 0x00})
	assert.Error(t, runInspect(cmd, []string{plain}))
}

func TestPlaylistCmds(t *testing.T) {
	cmd, out := setup(t)
	dir := t.TempDir()
	a := writeFile(t, dir, "alpha.mp3", mp3(apic("image/png", pngPayload)))
	b := writeFile(t, dir, "beta.mp3", mp3())

	require.NoError(t, runPlaylistAdd(cmd, []string{a, b}))
	assert.Contains(t, out.String(), "added 1 alpha\n")
	assert.Contains(t, out.String(), "added 2 beta (no cover)")

	out.Reset()
	require.NoError(t, runPlaylistList(cmd, nil))
	assert.Contains(t, out.String(), "image/png")
	assert.Contains(t, out.String(), "beta")

	out.Reset()
	require.NoError(t, runPlaylistRemove(cmd, []string{"1"}))
	assert.Error(t, runPlaylistRemove(cmd, []string{"1"}))
	assert.Error(t, runPlaylistRemove(cmd, []string{"one"}))

	out.Reset()
	require.NoError(t, runPlaylistList(cmd, nil))
	assert.NotContains(t, out.String(), "alpha")

	require.NoError(t, runPlaylistClear(cmd, nil))
	out.Reset()
	require.NoError(t, runPlaylistList(cmd, nil))
	assert.NotContains(t, out.String(), "beta")
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Contains(t, out.String(), "coverart 0.1.0")
}
