package id3

import (
	binutil "github.com/simonhull/coverart/internal/binary"
	"github.com/simonhull/coverart/internal/types"
)

// PictureFrameID is the attached picture frame identifier.
const PictureFrameID = "APIC"

// defaultMIMEType is reported when neither the declared type nor the payload
// identifies the image.
const defaultMIMEType = "image/jpeg"

// parsePicture parses an APIC frame body:
//
//	[1 byte]              Text encoding
//	[null-terminated]     MIME type (always single-byte)
//	[1 byte]              Picture type
//	[null-terminated]     Description (terminator width follows the encoding)
//	[remaining]           Picture data (may be empty)
//
// The returned image data aliases the body.
func parsePicture(body *binutil.Cursor) (types.Image, error) {
	encoding, err := binutil.Next[uint8](body, "text encoding")
	if err != nil {
		return types.Image{}, err
	}

	mime, err := body.UntilNull(1, "MIME type")
	if err != nil {
		return types.Image{}, err
	}

	pictureType, err := binutil.Next[uint8](body, "picture type")
	if err != nil {
		return types.Image{}, err
	}

	desc, err := body.UntilNull(terminatorWidth(encoding), "description")
	if err != nil {
		return types.Image{}, err
	}

	data := body.Rest()

	declared := string(mime)
	mimeType := normalizeMIME(declared)
	if detected := detectMIMEType(data); detected != "" {
		mimeType = detected
	}
	if mimeType == "" {
		mimeType = defaultMIMEType
	}

	width, height := imageDimensions(data, mimeType)

	return types.Image{
		MIMEType:         mimeType,
		DeclaredMIMEType: declared,
		Description:      decodeText(desc, encoding),
		Data:             data,
		Type:             types.PictureType(pictureType),
		Width:            width,
		Height:           height,
	}, nil
}
