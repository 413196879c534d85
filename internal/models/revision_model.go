package models

import "time"

// Revision is one entry in a document's append-only change log. An entry is
// written only when a non-owner editor saves; the owner's own saves are not
// logged. Entries carry full snapshots, not patches, and are never edited or
// removed once appended.
type Revision struct {
	ID              string    `json:"id" firestore:"id"`
	AuthorID        string    `json:"authorId" firestore:"authorId"`
	AuthorName      string    `json:"authorName,omitempty" firestore:"authorName,omitempty"`
	Timestamp       time.Time `json:"timestamp" firestore:"timestamp"`
	PreviousContent string    `json:"previousContent" firestore:"previousContent"`
	NewContent      string    `json:"newContent" firestore:"newContent"`
}
