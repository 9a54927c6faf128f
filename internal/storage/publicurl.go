package storage

import (
	"strings"

	"github.com/DwayneDumaguing/jamsody-next/internal/model"
)

const (
	objectNamespace = "/storage/v1/object/public/"
	mediaBucket     = "user-media"
)

// URLBuilder maps stored relative paths to publicly readable URLs under the
// backend's unauthenticated storage namespace.
type URLBuilder struct {
	baseURL string
}

func NewURLBuilder(baseURL string) *URLBuilder {
	return &URLBuilder{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// MediaURL builds the public URL for a storage path. The path is not
// validated; a malformed path surfaces as a broken media element, not an
// error.
func (b *URLBuilder) MediaURL(storagePath string) string {
	return b.baseURL + objectNamespace + mediaBucket + "/" + storagePath
}

// PosterURL picks the poster image for a media item: an explicit thumbnail
// URL wins, then a thumbnail path resolved through the bucket, otherwise
// empty.
func (b *URLBuilder) PosterURL(m *model.MediaItem) string {
	if m.ThumbnailURL != nil && strings.TrimSpace(*m.ThumbnailURL) != "" {
		return *m.ThumbnailURL
	}
	if m.ThumbnailPath != nil && strings.TrimSpace(*m.ThumbnailPath) != "" {
		return b.MediaURL(strings.TrimSpace(*m.ThumbnailPath))
	}
	return ""
}
