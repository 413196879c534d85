package core

import (
	"context"
	"errors"
	"fmt"

	"clausecraft-backend-go/internal/assist"
	"clausecraft-backend-go/internal/db"
)

// ErrEmptySelection is returned when an explanation is requested for nothing.
var ErrEmptySelection = errors.New("selected text cannot be empty")

// assistService implements the AssistService interface. It gates access and
// supplies the document context; the external text-understanding service is
// treated as an opaque function. Errors come back verbatim and there is no
// retry policy at this layer.
type assistService struct {
	documentRepo db.DocumentRepository
	client       *assist.Client
	auditService AuditService
}

// NewAssistService creates a new AssistService instance.
func NewAssistService(dr db.DocumentRepository, client *assist.Client, as AuditService) AssistService {
	return &assistService{
		documentRepo: dr,
		client:       client,
		auditService: as,
	}
}

// ExplainSelection asks the assist service to explain a selection in the
// context of the full document. AI tooling is a mutation-level affordance:
// read-only principals are refused.
func (s *assistService) ExplainSelection(ctx context.Context, userID, documentID, selectedText string) (string, error) {
	if s.documentRepo == nil || s.client == nil {
		return "", errors.New("assistService: component not initialized")
	}
	if selectedText == "" {
		return "", ErrEmptySelection
	}

	doc, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return "", fmt.Errorf("%w: document with ID '%s'", ErrDocumentNotFound, documentID)
		}
		return "", fmt.Errorf("failed to get document '%s' for explanation: %w", documentID, err)
	}
	if !ResolvePermission(doc, userID).CanMutate() {
		return "", fmt.Errorf("%w: user '%s' has read-only access to document '%s'", ErrForbidden, userID, documentID)
	}

	explanation, err := s.client.Explain(ctx, selectedText, doc.Content)
	if err != nil {
		return "", err
	}
	return explanation, nil
}
