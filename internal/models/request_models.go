package models

// CreateDocumentRequest represents the request body for creating a new document.
type CreateDocumentRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

// SaveContentRequest represents the request body for saving a new content snapshot.
// The snapshot replaces the document content wholesale; there is no patch format.
type SaveContentRequest struct {
	Content string `json:"content" binding:"required"`
}

// ShareDocumentRequest represents the request body for sharing a document.
// Sharing with an already-shared principal replaces their entry.
type ShareDocumentRequest struct {
	PrincipalID string `json:"principalId" binding:"required"`
	Permission  string `json:"permission" binding:"required"` // "read" or "edit"
}

// CreateHighlightRequest represents the request body for creating a highlight.
// Start and End are rune offsets into the current content snapshot.
type CreateHighlightRequest struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Type  string `json:"type" binding:"required"` // "important", "warning", "info" or "custom"
	Note  string `json:"note,omitempty"`
}

// AssistRequest represents the request body for an AI explanation of a selection.
type AssistRequest struct {
	SelectedText string `json:"selectedText" binding:"required"`
}

// ExportRequest represents the request body for exporting a document.
type ExportRequest struct {
	Format string `json:"format" binding:"required"` // e.g., "pdf", "docx"
}

// SessionPushRequest represents the request body for pushing a snapshot onto
// an editing session's undo history.
type SessionPushRequest struct {
	Content string `json:"content"`
}
