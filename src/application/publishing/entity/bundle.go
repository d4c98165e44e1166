package entity

import (
	"io"
	"mime"
	"path/filepath"
)

const (
	BundleExtension = ".aab"
	BundleMediaType = "application/octet-stream"
)

func init() {
	// .aab is unknown to the system MIME tables
	_ = mime.AddExtensionType(BundleExtension, BundleMediaType)
}

type Bundle struct {
	Name      string
	MediaType string
	Content   io.Reader
}

type UploadedBundle struct {
	VersionCode int64
	SHA256      string
}

// MediaTypeFor falls back to BundleMediaType for unregistered extensions.
func MediaTypeFor(name string) string {
	mediaType := mime.TypeByExtension(filepath.Ext(name))
	if mediaType == "" {
		return BundleMediaType
	}

	return mediaType
}
