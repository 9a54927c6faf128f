package dto

import "github.com/DwayneDumaguing/jamsody-next/internal/model"

// ProfilePage is the aggregated result of one profile page render: the
// profile itself plus the four supplementary collections, each independently
// empty-safe.
type ProfilePage struct {
	Profile     *model.PublicProfile
	Feed        []model.FeedEntry
	Genres      []string
	Instruments []string
}
