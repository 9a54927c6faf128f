package model

import "github.com/google/uuid"

type PublicProfile struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	FirstName         *string   `json:"first_name"`
	LastName          *string   `json:"last_name"`
	AvatarURL         *string   `json:"avatar_url"`
	Bio               *string   `json:"bio"`
	ProfileBio        *string   `json:"profile_bio"`
	Location          *string   `json:"location"`
	InstagramHandle   *string   `json:"instagram_handle"`
	YoutubeHandle     *string   `json:"youtube_handle"`
	SpotifyHandle     *string   `json:"spotify_handle"`
	AppleMusicHandle  *string   `json:"apple_music_handle"`
	BookingPermission *string   `json:"booking_permission"`
}
