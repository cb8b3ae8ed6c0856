// Package upload decides whether a candidate file may be persisted as a photo.
// The declared multipart type drives the accept decision; Sniff exists so the
// caller can log mismatches but is deliberately not a gate.
package upload

import (
	"bytes"
	"errors"
)

// MaxFileSize is the upload cap: 5 MiB.
const MaxFileSize = 5 * 1024 * 1024

var (
	ErrNoFile   = errors.New("no file uploaded")
	ErrBadType  = errors.New("invalid file type, only JPG and PNG images are allowed")
	ErrTooLarge = errors.New("file too large, maximum size is 5MB")
)

// allowedTypes maps accepted declared types to the canonical MIME type that
// gets stored with the photo.
var allowedTypes = map[string]string{
	"image/jpeg": "image/jpeg",
	"image/jpg":  "image/jpeg",
	"image/png":  "image/png",
}

// Validate applies the upload rules in order: presence, declared type, size.
// Size is checked last so an oversized PNG reports "too large" rather than a
// type error. On success it returns the canonical content type to store.
func Validate(declaredType string, size int64) (string, error) {
	if declaredType == "" && size == 0 {
		return "", ErrNoFile
	}

	canonical, ok := allowedTypes[declaredType]
	if !ok {
		return "", ErrBadType
	}

	if size > MaxFileSize {
		return "", ErrTooLarge
	}

	return canonical, nil
}

var (
	jpegMagic = []byte{0xff, 0xd8, 0xff}
	pngMagic  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
)

// Sniff inspects the leading bytes of a payload and reports the detected MIME
// type, or "" when the magic is unrecognized.
func Sniff(head []byte) string {
	switch {
	case len(head) >= len(jpegMagic) && bytes.Equal(head[:len(jpegMagic)], jpegMagic):
		return "image/jpeg"
	case len(head) >= len(pngMagic) && bytes.Equal(head[:len(pngMagic)], pngMagic):
		return "image/png"
	default:
		return ""
	}
}
