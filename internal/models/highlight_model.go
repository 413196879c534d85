package models

import "time"

// Highlight types. Purely presentational; no behavioral effect.
const (
	HighlightImportant = "important"
	HighlightWarning   = "warning"
	HighlightInfo      = "info"
	HighlightCustom    = "custom"
)

// Highlight is a half-open character range [Start, End) over the document
// content at the time the highlight was created. Highlights are immutable
// once created except for deletion; a changed opinion requires
// delete-and-recreate. Offsets are rune offsets and are never re-anchored
// when the document is edited afterwards.
type Highlight struct {
	ID    string `json:"id" firestore:"id"`
	Start int    `json:"start" firestore:"start"`
	End   int    `json:"end" firestore:"end"`
	// Text is the substring captured at creation, kept for display robustness
	// if the offsets later drift.
	Text       string    `json:"text" firestore:"text"`
	Type       string    `json:"type" firestore:"type"`
	Note       string    `json:"note,omitempty" firestore:"note,omitempty"`
	AuthorID   string    `json:"authorId" firestore:"authorId"`
	AuthorName string    `json:"authorName,omitempty" firestore:"authorName,omitempty"`
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt"`
}
