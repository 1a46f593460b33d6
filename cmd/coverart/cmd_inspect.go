package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/simonhull/coverart"
	binutil "github.com/simonhull/coverart/internal/binary"
	"github.com/simonhull/coverart/internal/id3"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Dump the ID3v2 header and frame layout of a file",
	Long: `Prints the tag header followed by every frame header (id, size, offset)
and a summary of the picture that extract would return.

Frames read before a structural error are still printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	tag, err := readTag(args[0])
	if err != nil {
		return err
	}
	return dumpTag(cmd.OutOrStdout(), tag)
}

// readTag reads the tag region at the start of path, leaving the audio
// payload untouched.
func readTag(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open `%v`", path)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat `%v`", path)
	}

	sr := binutil.NewSafeReader(f, stat.Size(), path)
	head, err := sr.ReadUpTo(0, id3.HeaderSize, "tag header")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read `%v`", path)
	}
	h, err := id3.ParseHeader(head)
	if err != nil {
		return nil, errors.Wrapf(err, "`%v`", path)
	}

	tag, err := sr.ReadUpTo(0, h.End(), "tag")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read tag of `%v`", path)
	}
	return tag, nil
}

func dumpTag(w io.Writer, tag []byte) error {
	h, frames, walkErr := id3.Frames(tag)
	if errors.Is(walkErr, coverart.ErrNoTag) {
		return walkErr
	}

	fmt.Fprintf(w, "ID3v2.%d.%d (size: %d, flags: 0x%02x, extended header: %t)\n",
		h.Version, h.Revision, h.Size, h.Flags, h.HasExtendedHeader())
	if int64(len(tag)) < h.End() {
		fmt.Fprintf(w, "  truncated: %d of %d bytes present\n", len(tag), h.End())
	}

	for _, fh := range frames {
		fmt.Fprintf(w, "  %s (size: %d, offset: %d, flags: 0x%04x)\n", fh.ID, fh.Size, fh.Offset, fh.Flags)
	}

	if walkErr != nil {
		fmt.Fprintf(w, "error: %v\n", walkErr)
		return walkErr
	}

	img, err := coverart.Lookup(tag, "mp3")
	if err != nil {
		fmt.Fprintf(w, "picture: none (%v)\n", err)
		return nil
	}
	fmt.Fprintf(w, "picture: %s, declared %q", img, img.DeclaredMIMEType)
	if img.Description != "" {
		fmt.Fprintf(w, ", description %q", img.Description)
	}
	fmt.Fprintln(w)
	return nil
}
