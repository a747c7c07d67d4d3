package binary

import (
	"net/http"
	"strings"
)

// Binary is an immutable chunk of image data together with its content type.
type Binary struct {
	Content  []byte
	MimeType string
	Format   string
}

func New(content []byte, mimeType string) Binary {
	return Binary{
		Content:  content,
		MimeType: mimeType,
		Format:   FormatFromMimeType(mimeType),
	}
}

// Sniff detects the mime type of content when the origin did not provide one.
func Sniff(content []byte) Binary {
	return New(content, http.DetectContentType(content))
}

func (b Binary) Size() int64 {
	return int64(len(b.Content))
}

func (b Binary) IsImage() bool {
	return strings.HasPrefix(b.MimeType, "image/")
}

func FormatFromMimeType(mimeType string) string {
	mimeType = strings.TrimSpace(strings.SplitN(mimeType, ";", 2)[0])
	switch mimeType {
	case "image/jpeg", "image/jpg", "image/pjpeg":
		return "jpeg"
	case "image/svg+xml":
		return "svg"
	}

	if strings.HasPrefix(mimeType, "image/") {
		return strings.TrimPrefix(mimeType, "image/")
	}

	return ""
}

func MimeTypeFromFormat(format string) string {
	switch format {
	case "jpeg", "jpg":
		return "image/jpeg"
	case "svg":
		return "image/svg+xml"
	case "":
		return ""
	}

	return "image/" + format
}
