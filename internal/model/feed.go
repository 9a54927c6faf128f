package model

type FeedEntryKind string

const (
	FeedEntryMedia  FeedEntryKind = "media"
	FeedEntryPrompt FeedEntryKind = "prompt"
)

// FeedEntry is one element of a public profile feed: either a media item or
// an answered prompt, never both.
type FeedEntry struct {
	Kind   FeedEntryKind `json:"kind"`
	Media  *MediaItem    `json:"media,omitempty"`
	Prompt *PromptAnswer `json:"prompt,omitempty"`
}

// BuildFeed merges media and prompts into a single ordered list, walking both
// in lock-step so the two content types alternate instead of clumping. At each
// position the media item comes first, then the prompt. Inputs are not
// mutated.
func BuildFeed(media []*MediaItem, prompts []*PromptAnswer) []FeedEntry {
	maxLen := len(media)
	if len(prompts) > maxLen {
		maxLen = len(prompts)
	}

	feed := make([]FeedEntry, 0, len(media)+len(prompts))
	for i := 0; i < maxLen; i++ {
		if i < len(media) {
			feed = append(feed, FeedEntry{Kind: FeedEntryMedia, Media: media[i]})
		}
		if i < len(prompts) {
			feed = append(feed, FeedEntry{Kind: FeedEntryPrompt, Prompt: prompts[i]})
		}
	}

	return feed
}
