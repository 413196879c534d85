package db

import (
	"context"

	"clausecraft-backend-go/internal/models"
)

// UserRepository defines the interface for user data storage operations.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}

// DocumentRepository defines the interface for document data storage
// operations. The document is stored as one aggregate: Update replaces the
// whole Firestore document in a single write, which is what makes a save
// (content plus revision log) atomic as far as this service is concerned.
type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) (string, error) // Returns new document ID
	GetByID(ctx context.Context, documentID string) (*models.Document, error)
	GetByOwnerID(ctx context.Context, ownerID string, paginationParams map[string]string) ([]*models.Document, error)
	Update(ctx context.Context, doc *models.Document) error
	Delete(ctx context.Context, documentID string) error
}

// AuditRepository defines the interface for audit log data storage operations.
type AuditRepository interface {
	Create(ctx context.Context, logEntry models.AuditLog) error
}
