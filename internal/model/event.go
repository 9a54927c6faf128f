package model

import (
	"strings"

	"github.com/google/uuid"
)

// Publication holds the two status fields gating public visibility of a
// record. They are independent of soft-delete/cancellation status.
type Publication struct {
	PublishState *string `json:"publish_state"`
	Visibility   *string `json:"visibility"`
}

// IsPublishedPublic is case-insensitive and fails closed: an absent field
// normalizes to the empty string, which never matches.
func (p Publication) IsPublishedPublic() bool {
	return lowered(p.PublishState) == "published" && lowered(p.Visibility) == "public"
}

type EventHost struct {
	Username  *string `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	AvatarURL *string `json:"avatar_url"`
}

type PublicEvent struct {
	ID          uuid.UUID `json:"id"`
	EventCode   *string   `json:"event_code"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	EventType   *string   `json:"event_type"`

	Publication
	Status *string `json:"status"`

	Date      string  `json:"date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`

	IsOnline    *bool   `json:"is_online"`
	MeetingLink *string `json:"meeting_link"`

	LocationName    *string `json:"location_name"`
	LocationAddress *string `json:"location_address"`

	CoverImageURL *string `json:"cover_image_url"`

	IsFree   *bool   `json:"is_free"`
	Price    *string `json:"price"`
	Capacity *int    `json:"capacity"`

	Host *EventHost `json:"host,omitempty"`
}

// IsPubliclyViewable reports whether an anonymous visitor may see the event:
// it must be published+public and not cancelled.
func (e *PublicEvent) IsPubliclyViewable() bool {
	return e.IsPublishedPublic() && lowered(e.Status) != "cancelled"
}

// IsOnlineEvent treats an event as online when the host flagged it online or
// a meeting link is present.
func (e *PublicEvent) IsOnlineEvent() bool {
	if e.IsOnline != nil && *e.IsOnline {
		return true
	}
	return e.MeetingLink != nil && strings.TrimSpace(*e.MeetingLink) != ""
}

// Code returns the shareable event code, falling back to the id.
func (e *PublicEvent) Code() string {
	if e.EventCode != nil && strings.TrimSpace(*e.EventCode) != "" {
		return strings.TrimSpace(*e.EventCode)
	}
	return e.ID.String()
}

func lowered(s *string) string {
	if s == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*s))
}
