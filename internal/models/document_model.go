package models

import "time"

// Permission levels that can be granted through a document's share list.
// The owner's "owner" level is derived, never stored.
const (
	PermissionRead = "read"
	PermissionEdit = "edit"
)

// ShareEntry grants one principal access to a document.
// Entries are kept in the order they were added; re-sharing the same
// principal replaces their entry in place rather than appending.
type ShareEntry struct {
	PrincipalID string `json:"principalId" firestore:"principalId"`
	DisplayName string `json:"displayName" firestore:"displayName"`
	Permission  string `json:"permission" firestore:"permission"` // "read" or "edit"
}

// Document represents a contract document under collaborative review.
// The whole aggregate (content, share list, highlights, revision log) lives
// in a single Firestore document so a save replaces it atomically.
type Document struct {
	ID      string `json:"id" firestore:"-"` // Document ID, auto-generated
	OwnerID string `json:"ownerId" firestore:"ownerId"`
	// OwnerName is denormalized for display so the viewer never needs a user lookup.
	OwnerName string `json:"ownerName,omitempty" firestore:"ownerName,omitempty"`
	Title     string `json:"title" firestore:"title"`

	// Content is the current text snapshot. It is replaced wholesale on save,
	// never patched in place.
	Content string `json:"content" firestore:"content"`
	// PreviousContent is the snapshot immediately prior to the most recent
	// non-owner edit. Empty until at least one such edit has happened.
	PreviousContent string `json:"previousContent,omitempty" firestore:"previousContent,omitempty"`

	SharedWith  []ShareEntry `json:"sharedWith,omitempty" firestore:"sharedWith,omitempty"`
	Highlights  []Highlight  `json:"highlights,omitempty" firestore:"highlights,omitempty"`
	RevisionLog []Revision   `json:"revisionLog,omitempty" firestore:"revisionLog,omitempty"`

	// LastEditedBy/LastEditedAt are set only by non-owner edits and drive the
	// "updated by" notice shown to the owner.
	LastEditedBy     string     `json:"lastEditedBy,omitempty" firestore:"lastEditedBy,omitempty"`
	LastEditedByName string     `json:"lastEditedByName,omitempty" firestore:"lastEditedByName,omitempty"`
	LastEditedAt     *time.Time `json:"lastEditedAt,omitempty" firestore:"lastEditedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// ShareEntryFor returns the share entry for a principal, if one exists.
func (d *Document) ShareEntryFor(principalID string) (ShareEntry, bool) {
	for _, entry := range d.SharedWith {
		if entry.PrincipalID == principalID {
			return entry, true
		}
	}
	return ShareEntry{}, false
}
