package api

import (
	"time"

	"clausecraft-backend-go/internal/core"
	"clausecraft-backend-go/internal/models"
)

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`             // A high-level error message or code
	Details string `json:"details,omitempty"` // More specific details about the error, if available
}

// SuccessResponse is a generic structure for simple success messages.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// DocumentResponse wraps a document with the acting principal's resolved
// permission and capability set, computed once per request so the client
// renders affordances from a single immutable value.
type DocumentResponse struct {
	Document     *models.Document  `json:"document"`
	Permission   core.Permission   `json:"permission"`
	Capabilities core.Capabilities `json:"capabilities"`
}

// AnnotatedContentResponse carries the rendered markup for the viewer.
type AnnotatedContentResponse struct {
	Content string `json:"content"`
}

// ChangedLinesResponse carries the line indices a diff marked as changed.
type ChangedLinesResponse struct {
	ChangedLines []int `json:"changedLines"`
}

// AssistResponse carries the explanation returned by the assist service.
type AssistResponse struct {
	Explanation string `json:"explanation"`
}

// SessionResponse describes an editing session and its undo/redo state.
type SessionResponse struct {
	SessionID string    `json:"sessionId"`
	Content   string    `json:"content"`
	CanUndo   bool      `json:"canUndo"`
	CanRedo   bool      `json:"canRedo"`
	CreatedAt time.Time `json:"createdAt"`
}
