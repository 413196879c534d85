package core

import (
	"context"

	"clausecraft-backend-go/internal/models"
)

// UserService defines the interface for user-related operations.
type UserService interface {
	// GetOrCreate retrieves a user by ID. If the user doesn't exist, it creates a new one with default values.
	GetOrCreate(ctx context.Context, userID, email, displayName, photoURL string) (*models.User, bool, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
}

// DocumentService defines the interface for document-related operations.
// Every method resolves the acting principal's permission against the
// current document state before touching anything.
type DocumentService interface {
	CreateDocument(ctx context.Context, userID, userName string, req models.CreateDocumentRequest) (*models.Document, error)
	GetDocument(ctx context.Context, userID, documentID string) (*models.Document, Permission, error)
	ListDocuments(ctx context.Context, userID string, paginationParams map[string]string) ([]*models.Document, error)
	SaveContent(ctx context.Context, userID, userName, documentID, newContent string) (*models.Document, error)
	DeleteDocument(ctx context.Context, userID, documentID string) error

	ShareDocument(ctx context.Context, ownerID, documentID string, req models.ShareDocumentRequest) (*models.Document, error)
	RemoveShare(ctx context.Context, ownerID, documentID, targetPrincipalID string) error

	AddHighlight(ctx context.Context, userID, userName, documentID string, req models.CreateHighlightRequest) (*models.Highlight, error)
	RemoveHighlight(ctx context.Context, userID, documentID, highlightID string) error
	AnnotatedContent(ctx context.Context, userID, documentID string) (string, error)

	ContentChanges(ctx context.Context, userID, documentID string) ([]int, error)
	RevisionHistory(ctx context.Context, userID, documentID string) ([]models.Revision, error)
	RevisionChanges(ctx context.Context, userID, documentID, revisionID string) ([]int, error)
}

// AssistService defines the interface for AI-assisted contract tooling.
type AssistService interface {
	// ExplainSelection asks the external text-understanding service to
	// explain a selection in the context of the whole document.
	ExplainSelection(ctx context.Context, userID, documentID, selectedText string) (string, error)
}

// ExportService defines the interface for rendering a document to a binary format.
type ExportService interface {
	// Export renders the current content snapshot. Returns the artifact
	// bytes and its content type.
	Export(ctx context.Context, userID, documentID, format string) ([]byte, string, error)
}

// AuditService defines the interface for audit logging operations.
type AuditService interface {
	CreateAuditLog(ctx context.Context, logEntry models.AuditLog) error
}
