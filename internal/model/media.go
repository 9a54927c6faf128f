package model

import "github.com/google/uuid"

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
	MediaTypeAudio = "audio"
)

type MediaItem struct {
	ID              uuid.UUID `json:"id"`
	MediaType       string    `json:"media_type"`
	StoragePath     string    `json:"storage_path"`
	Caption         *string   `json:"caption"`
	OrderIndex      *int      `json:"order_index"`
	DurationSeconds *int      `json:"duration_seconds"`
	IsPublic        *bool     `json:"is_public"`
	ThumbnailPath   *string   `json:"thumbnail_path"`
	ThumbnailURL    *string   `json:"thumbnail_url"`
}

// IsAvatarSlot reports whether the item occupies the profile-avatar slot
// (order index 0), which is never shown in the feed.
func (m *MediaItem) IsAvatarSlot() bool {
	return m.OrderIndex != nil && *m.OrderIndex == 0
}
