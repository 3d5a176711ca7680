package constants

import "strings"

// Format is the coarse document kind derived from a file extension.
type Format string

const (
	PDF   Format = "PDF"
	IMAGE Format = "IMAGE"
)

// AllowedExtensions holds the file extensions accepted for pattern analysis.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"pdf":  {},
	"heic": {},
	"heif": {},
}

const (
	// MaxUploadBytes caps the size of a single uploaded pattern document.
	MaxUploadBytes = 20 * 1024 * 1024

	// MaxPageImageBytes is the transport ceiling for a single rendered page
	// sent to the vision provider.
	MaxPageImageBytes = 5 * 1024 * 1024

	// MaxDocumentPages bounds how many pages of a PDF are analyzed.
	MaxDocumentPages = 20
)

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to its coarse format.
// Unknown extensions return the empty Format.
func MapExtToFormat(ext string) Format {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png", "heic", "heif":
		return IMAGE
	}
	return ""
}

// MediaType returns the media-type tag the vision provider expects for a
// given file name. JPEG is the fallback for unrecognized names.
func MediaType(fileName string) string {
	name := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(name, ".png"):
		return "image/png"
	case strings.HasSuffix(name, ".heic"), strings.HasSuffix(name, ".heif"):
		return "image/heic"
	case strings.HasSuffix(name, ".pdf"):
		return "application/pdf"
	default:
		return "image/jpeg"
	}
}
