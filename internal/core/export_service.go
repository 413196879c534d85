package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clausecraft-backend-go/internal/db"
	"clausecraft-backend-go/internal/export"
	"clausecraft-backend-go/internal/models"
)

// ErrInvalidExportFormat is returned for formats the renderer does not support.
var ErrInvalidExportFormat = errors.New("invalid export format")

// exportService implements the ExportService interface. It supplies the
// current content snapshot to the external rendering service and passes the
// resulting artifact through opaque.
type exportService struct {
	documentRepo db.DocumentRepository
	client       *export.Client
	auditService AuditService
}

// NewExportService creates a new ExportService instance.
func NewExportService(dr db.DocumentRepository, client *export.Client, as AuditService) ExportService {
	return &exportService{
		documentRepo: dr,
		client:       client,
		auditService: as,
	}
}

// Export renders the current content snapshot to the requested format.
// Any principal that can read the document can export it.
func (s *exportService) Export(ctx context.Context, userID, documentID, format string) ([]byte, string, error) {
	if s.documentRepo == nil || s.client == nil {
		return nil, "", errors.New("exportService: component not initialized")
	}
	if format != "pdf" && format != "docx" {
		return nil, "", fmt.Errorf("%w: '%s'", ErrInvalidExportFormat, format)
	}

	doc, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: document with ID '%s'", ErrDocumentNotFound, documentID)
		}
		return nil, "", fmt.Errorf("failed to get document '%s' for export: %w", documentID, err)
	}

	artifact, contentType, err := s.client.Render(ctx, doc.ID, doc.Content, format)
	if err != nil {
		return nil, "", err
	}

	if s.auditService != nil {
		entry := models.AuditLog{
			UserID:     userID,
			Action:     "DOCUMENT_EXPORT",
			TargetType: "DOCUMENT",
			TargetID:   documentID,
			Timestamp:  time.Now().UTC(),
			Details:    map[string]interface{}{"format": format},
		}
		if auditErr := s.auditService.CreateAuditLog(ctx, entry); auditErr != nil {
			fmt.Printf("Warning: failed to create audit log for DOCUMENT_EXPORT (documentID: %s): %v\n", documentID, auditErr)
		}
	}

	return artifact, contentType, nil
}
