// Package types provides the data structures shared by the extractors and the
// public coverart API.
package types

import "fmt"

// Image is a picture embedded in an audio file's metadata.
type Image struct {
	// MIME type reported to callers ("image/jpeg", "image/png", ...)
	MIMEType string

	// MIME type exactly as declared inside the tag, before normalization
	DeclaredMIMEType string

	// Description stored alongside the picture (optional)
	Description string

	// Image payload
	Data []byte

	// Picture role (front cover, artist, ...)
	Type PictureType

	// Dimensions when they can be read from the payload header, otherwise 0
	Width  int
	Height int
}

// PictureType is the ID3v2 APIC picture type code.
//
// See: https://id3.org/id3v2.4.0-frames (APIC frame)
type PictureType int

const (
	PictureOther             PictureType = iota // Other
	PictureIcon                                 // File icon (32x32 PNG)
	PictureOtherIcon                            // Other file icon
	PictureFrontCover                           // Front cover
	PictureBackCover                            // Back cover
	PictureLeaflet                              // Leaflet page
	PictureMedia                                // Media (CD/vinyl label)
	PictureLeadArtist                           // Lead artist/performer/soloist
	PictureArtist                               // Artist/performer
	PictureConductor                            // Conductor
	PictureBand                                 // Band/orchestra
	PictureComposer                             // Composer
	PictureLyricist                             // Lyricist/text writer
	PictureRecordingLocation                    // Recording location
	PictureDuringRecording                      // During recording
	PictureDuringPerformance                    // During performance
	PictureVideoCapture                         // Movie/video screen capture
	PictureBrightFish                           // A bright colored fish
	PictureIllustration                         // Illustration
	PictureBandLogotype                         // Band/artist logotype
	PicturePublisherLogotype                    // Publisher/studio logotype
)

var pictureTypeNames = [...]string{
	"Other",
	"File icon",
	"Other file icon",
	"Front cover",
	"Back cover",
	"Leaflet page",
	"Media",
	"Lead artist",
	"Artist",
	"Conductor",
	"Band",
	"Composer",
	"Lyricist",
	"Recording location",
	"During recording",
	"During performance",
	"Video capture",
	"Bright colored fish",
	"Illustration",
	"Band logotype",
	"Publisher logotype",
}

func (t PictureType) String() string {
	if t < 0 || int(t) >= len(pictureTypeNames) {
		return fmt.Sprintf("PictureType(%d)", int(t))
	}
	return pictureTypeNames[t]
}

// String returns a human-readable summary of the image.
//
// Example output: "Front cover (1200x1200 JPEG, 245KB)"
func (img Image) String() string {
	dims := ""
	if img.Width > 0 && img.Height > 0 {
		dims = fmt.Sprintf("%dx%d ", img.Width, img.Height)
	}
	return fmt.Sprintf("%s (%s%s, %s)", img.Type, dims, shortFormat(img.MIMEType), formatSize(len(img.Data)))
}

// Extension returns the conventional file extension for the image's MIME type.
func (img Image) Extension() string {
	switch img.MIMEType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/bmp":
		return ".bmp"
	case "image/webp":
		return ".webp"
	case "image/tiff":
		return ".tiff"
	default:
		return ".bin"
	}
}

func formatSize(bytes int) string {
	const (
		KB = 1024
		MB = 1024 * KB
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%dKB", bytes/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

func shortFormat(mime string) string {
	switch mime {
	case "image/jpeg":
		return "JPEG"
	case "image/png":
		return "PNG"
	case "image/gif":
		return "GIF"
	case "image/bmp":
		return "BMP"
	case "image/webp":
		return "WebP"
	default:
		return "Image"
	}
}
