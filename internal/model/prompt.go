package model

import "github.com/google/uuid"

// PromptAnswer is a resolved question/answer card shown on a public profile.
type PromptAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// PromptAnswerRow is a raw user_prompts row with the question still unresolved.
type PromptAnswerRow struct {
	PromptID uuid.UUID `json:"prompt_id"`
	Answer   string    `json:"answer"`
}

// CatalogPrompt is one entry of the fixed question catalog.
type CatalogPrompt struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"prompt_text"`
}
