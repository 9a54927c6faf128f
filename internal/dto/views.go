package dto

import (
	"strings"

	"github.com/DwayneDumaguing/jamsody-next/internal/format"
	"github.com/DwayneDumaguing/jamsody-next/internal/model"
	"github.com/DwayneDumaguing/jamsody-next/internal/storage"
	"github.com/DwayneDumaguing/jamsody-next/pkg/utils"
)

// ProfileView is the render-ready shape handed to the profile template.
type ProfileView struct {
	Username    string
	DisplayName string
	TitleName   string
	AvatarURL   string
	Bio         string
	Location    string
	Genres      []string
	Instruments []string
	DeepLink    string
	Feed        []FeedEntryView
}

type FeedEntryView struct {
	Kind      string
	MediaType string
	URL       string
	PosterURL string
	Caption   string
	Question  string
	Answer    string
}

type EventView struct {
	Title           string
	Subtitle        string
	EventType       string
	Location        string
	Description     string
	CoverImageURL   string
	HostName        string
	HostUsername    string
	HostAvatarURL   string
	HostProfilePath string
	DeepLink        string
}

func ProfileViewFromPage(page *ProfilePage, urls *storage.URLBuilder) *ProfileView {
	p := page.Profile

	view := &ProfileView{
		Username:    format.TrimAt(strings.TrimSpace(p.Username)),
		DisplayName: format.DisplayName(p),
		TitleName:   format.TitleName(p),
		AvatarURL:   stringOrEmpty(p.AvatarURL),
		Bio:         strings.TrimSpace(stringOrEmpty(p.Bio)),
		Location:    strings.TrimSpace(stringOrEmpty(p.Location)),
		Genres:      page.Genres,
		Instruments: page.Instruments,
		DeepLink:    utils.ProfileDeepLink(p.Username),
	}

	for _, entry := range page.Feed {
		view.Feed = append(view.Feed, feedEntryViewFromEntry(entry, urls))
	}

	return view
}

func feedEntryViewFromEntry(entry model.FeedEntry, urls *storage.URLBuilder) FeedEntryView {
	if entry.Kind == model.FeedEntryPrompt {
		return FeedEntryView{
			Kind:     string(entry.Kind),
			Question: entry.Prompt.Question,
			Answer:   entry.Prompt.Answer,
		}
	}

	m := entry.Media
	return FeedEntryView{
		Kind:      string(entry.Kind),
		MediaType: m.MediaType,
		URL:       urls.MediaURL(m.StoragePath),
		PosterURL: urls.PosterURL(m),
		Caption:   strings.TrimSpace(stringOrEmpty(m.Caption)),
	}
}

func EventViewFromEvent(e *model.PublicEvent) *EventView {
	title := strings.TrimSpace(e.Title)
	if title == "" {
		title = "Event"
	}

	eventType := strings.TrimSpace(stringOrEmpty(e.EventType))
	if eventType == "" {
		eventType = "Event"
	}

	view := &EventView{
		Title:         title,
		Subtitle:      format.EventDateTime(e),
		EventType:     strings.ToUpper(eventType),
		Location:      eventLocation(e),
		Description:   strings.TrimSpace(stringOrEmpty(e.Description)),
		CoverImageURL: stringOrEmpty(e.CoverImageURL),
		HostName:      format.HostName(e.Host),
		DeepLink:      utils.EventDeepLink(e.Code()),
	}

	if e.Host != nil {
		view.HostAvatarURL = stringOrEmpty(e.Host.AvatarURL)
		if username := format.TrimAt(strings.TrimSpace(stringOrEmpty(e.Host.Username))); username != "" {
			view.HostUsername = "@" + username
			view.HostProfilePath = "/u/" + username
		}
	}

	return view
}

func eventLocation(e *model.PublicEvent) string {
	if e.IsOnlineEvent() {
		return "Online"
	}

	var parts []string
	if name := strings.TrimSpace(stringOrEmpty(e.LocationName)); name != "" {
		parts = append(parts, name)
	}
	if addr := strings.TrimSpace(stringOrEmpty(e.LocationAddress)); addr != "" {
		parts = append(parts, addr)
	}

	return strings.Join(parts, " • ")
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
