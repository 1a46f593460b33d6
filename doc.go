// Package coverart extracts embedded cover images from audio files.
//
// coverart reads the ID3v2 tag at the start of an MP3 file and returns the
// first attached picture (APIC frame) it carries: the image bytes, the media
// type, the picture role and, when the payload header allows, its dimensions.
//
// # Quick Start
//
// From a buffer the host already holds:
//
//	img, ok := coverart.Extract(data, "audio/mpeg")
//	if ok {
//		os.WriteFile("cover"+img.Extension(), img.Data, 0644)
//	}
//
// From disk, reading only the tag and never the audio payload:
//
//	img, err := coverart.ExtractFile(ctx, "song.mp3")
//	if errors.Is(err, coverart.ErrNotFound) {
//		// tagged, but no picture
//	}
//
// # Media Kind
//
// Every entry point takes a hint describing the file: a MIME type such as
// "audio/mpeg", an extension such as ".mp3", or a file name. Hints naming
// anything other than MP3 are declined without touching the data.
//
// # Error Handling
//
// coverart never panics on malformed input and never reads outside the
// buffer it was given. Extract collapses every failure into "no image".
// Lookup and ExtractFile return the reason instead, matching one of:
//
//   - ErrUnsupportedFormat: the hint does not name a supported format
//   - ErrNoTag: no ID3v2 header
//   - ErrMalformedFrame: a frame could not be parsed inside the buffer
//   - ErrNotFound: the tag is well formed but has no picture
//   - ErrImageTooLarge: the picture exceeds WithMaxImageSize
//
// Structural errors also carry a *FrameError with the frame ID and offset.
//
// # Media Type
//
// The reported MIMEType follows the payload's magic bytes when they identify
// a known image format, then the type declared in the frame, then
// "image/jpeg". DeclaredMIMEType always holds the raw declared string.
// WithFixedMIMEType forces a single reported type.
//
// # Batch Extraction
//
// ExtractMany processes many files concurrently with ordered results:
//
//	results, err := coverart.ExtractMany(ctx, paths, coverart.WithConcurrency(4))
//	for _, r := range results {
//		if r.Err == nil {
//			fmt.Println(r.Path, r.Image)
//		}
//	}
package coverart
