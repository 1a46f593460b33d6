package types

// Format identifies an audio container that may carry embedded images.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota
	// FormatMP3 represents MPEG audio with an ID3v2 tag.
	FormatMP3
)

func (f Format) String() string {
	switch f {
	case FormatMP3:
		return "MP3"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatMP3:
		return []string{".mp3"}
	default:
		return nil
	}
}

// MIMETypes returns the media types a host may report for this format.
func (f Format) MIMETypes() []string {
	switch f {
	case FormatMP3:
		return []string{"audio/mpeg", "audio/mp3", "audio/mpeg3", "audio/x-mpeg-3", "audio/x-mp3"}
	default:
		return nil
	}
}

// ExtractOptions tunes a single extraction.
type ExtractOptions struct {
	// FixedMIMEType, when set, replaces the reported MIME type.
	FixedMIMEType string

	// MaxImageSize rejects larger payloads (0 = no limit).
	MaxImageSize int
}
