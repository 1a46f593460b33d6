package coverart

import (
	"mime"
	"path/filepath"
	"slices"
	"strings"

	gomime "github.com/cubewise-code/go-mime"

	"github.com/simonhull/coverart/internal/types"
)

// Format is an alias to types.Format.
type Format = types.Format

// Re-export format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatMP3     = types.FormatMP3
)

var knownFormats = []Format{FormatMP3}

// FormatFromKind resolves a media kind hint to a format.
//
// The hint may be a MIME type ("audio/mpeg", parameters allowed), an
// extension (".mp3" or "mp3") or a file name or path. Matching is
// case-insensitive. Unrecognized hints resolve to FormatUnknown.
func FormatFromKind(kind string) Format {
	k := strings.ToLower(strings.TrimSpace(kind))
	if k == "" {
		return FormatUnknown
	}

	if mediaType, _, err := mime.ParseMediaType(k); err == nil {
		if f := formatFromMIME(mediaType); f != FormatUnknown {
			return f
		}
	}

	ext := filepath.Ext(k)
	if ext == "" && !strings.ContainsAny(k, `/\.`) {
		// Bare extension such as "mp3"
		ext = "." + k
	}
	if ext == "" {
		return FormatUnknown
	}

	for _, f := range knownFormats {
		if slices.Contains(f.Extensions(), ext) {
			return f
		}
	}

	// Fall back to the extension's registered media type
	if mediaType := gomime.TypeByExtension(ext); mediaType != "" {
		if mt, _, err := mime.ParseMediaType(mediaType); err == nil {
			return formatFromMIME(mt)
		}
	}

	return FormatUnknown
}

func formatFromMIME(mediaType string) Format {
	for _, f := range knownFormats {
		if slices.Contains(f.MIMETypes(), mediaType) {
			return f
		}
	}
	return FormatUnknown
}

// IsSupported reports whether the hint names a format coverart can extract
// images from.
func IsSupported(kind string) bool {
	return FormatFromKind(kind) != FormatUnknown
}
