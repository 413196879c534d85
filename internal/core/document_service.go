package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clausecraft-backend-go/internal/db"
	"clausecraft-backend-go/internal/models"

	"github.com/google/uuid"
)

// Custom errors for the DocumentService
var (
	ErrDocumentNotFound       = errors.New("document not found")
	ErrForbidden              = errors.New("user does not have permission for this action on the document")
	ErrRevisionNotFound       = errors.New("revision not found")
	ErrCannotShareWithSelf    = errors.New("cannot share document with oneself")
	ErrShareTargetNotFound    = errors.New("target user for sharing not found")
	ErrInvalidPermissionLevel = errors.New("invalid permission level specified for sharing")
	ErrDocumentUpdateFailed   = errors.New("failed to update document")
	ErrDocumentDeletionFailed = errors.New("failed to delete document")
)

// documentService implements the DocumentService interface.
type documentService struct {
	documentRepo db.DocumentRepository
	userRepo     db.UserRepository
	auditService AuditService
}

// NewDocumentService creates a new DocumentService instance.
func NewDocumentService(
	dr db.DocumentRepository,
	ur db.UserRepository,
	as AuditService,
) DocumentService {
	return &documentService{
		documentRepo: dr,
		userRepo:     ur,
		auditService: as,
	}
}

// audit records an audit log entry best-effort. A failed audit write never
// fails the mutation that triggered it.
func (s *documentService) audit(ctx context.Context, entry models.AuditLog) {
	if s.auditService == nil {
		return
	}
	entry.Timestamp = time.Now().UTC()
	if err := s.auditService.CreateAuditLog(ctx, entry); err != nil {
		fmt.Printf("Warning: failed to create audit log for %s (target: %s): %v\n", entry.Action, entry.TargetID, err)
	}
}

// fetch loads the document and resolves the acting principal's permission
// against its current state.
func (s *documentService) fetch(ctx context.Context, userID, documentID string) (*models.Document, Permission, error) {
	doc, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, PermissionRead, fmt.Errorf("%w: document with ID '%s'", ErrDocumentNotFound, documentID)
		}
		return nil, PermissionRead, fmt.Errorf("failed to get document '%s' from repository: %w", documentID, err)
	}
	if doc == nil {
		return nil, PermissionRead, fmt.Errorf("%w: document with ID '%s'", ErrDocumentNotFound, documentID)
	}
	return doc, ResolvePermission(doc, userID), nil
}

// CreateDocument creates a new document owned by the acting user with an
// empty share list, no highlights and an empty revision log.
func (s *documentService) CreateDocument(ctx context.Context, userID, userName string, req models.CreateDocumentRequest) (*models.Document, error) {
	if s.documentRepo == nil {
		return nil, errors.New("documentService: component not initialized")
	}

	newDoc := &models.Document{
		OwnerID:     userID,
		OwnerName:   userName,
		Title:       req.Title,
		Content:     req.Content,
		SharedWith:  []models.ShareEntry{},
		Highlights:  []models.Highlight{},
		RevisionLog: []models.Revision{},
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	documentID, err := s.documentRepo.Create(ctx, newDoc)
	if err != nil {
		return nil, fmt.Errorf("failed to create document in repository: %w", err)
	}
	newDoc.ID = documentID

	s.audit(ctx, models.AuditLog{
		UserID:     userID,
		Action:     "DOCUMENT_CREATE",
		TargetType: "DOCUMENT",
		TargetID:   newDoc.ID,
		Details:    map[string]interface{}{"title": newDoc.Title},
	})

	return newDoc, nil
}

// GetDocument retrieves a document together with the acting principal's
// resolved permission. Any authenticated principal that can reach the
// document resolves to at least read access.
func (s *documentService) GetDocument(ctx context.Context, userID, documentID string) (*models.Document, Permission, error) {
	if s.documentRepo == nil {
		return nil, PermissionRead, errors.New("documentService: documentRepo not initialized")
	}
	return s.fetch(ctx, userID, documentID)
}

// ListDocuments retrieves documents owned by the user.
func (s *documentService) ListDocuments(ctx context.Context, userID string, paginationParams map[string]string) ([]*models.Document, error) {
	if s.documentRepo == nil {
		return nil, errors.New("documentService: documentRepo not initialized")
	}
	docs, err := s.documentRepo.GetByOwnerID(ctx, userID, paginationParams)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents for user '%s': %w", userID, err)
	}
	return docs, nil
}

// SaveContent replaces the document content with a new snapshot.
//
// Writes are refused outright for read-only principals, before any state is
// constructed. An owner save overwrites the content and nothing else: no
// revision entry, and previousContent / lastEditedBy are left untouched. A
// shared editor's save records the pre-edit snapshot as previousContent,
// stamps lastEditedBy/lastEditedAt, appends a revision log entry carrying
// both snapshots, and then replaces the content. The whole aggregate is
// written back in a single repository update, so content and log can never
// diverge: either the entire new state lands or none of it does.
func (s *documentService) SaveContent(ctx context.Context, userID, userName, documentID, newContent string) (*models.Document, error) {
	if s.documentRepo == nil {
		return nil, errors.New("documentService: component not initialized")
	}

	doc, permission, err := s.fetch(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}
	if !permission.CanMutate() {
		return nil, fmt.Errorf("%w: user '%s' has read-only access to document '%s'", ErrForbidden, userID, documentID)
	}

	if permission == PermissionOwner {
		doc.Content = newContent
	} else {
		now := time.Now().UTC()
		doc.PreviousContent = doc.Content
		doc.LastEditedBy = userID
		doc.LastEditedByName = userName
		doc.LastEditedAt = &now
		doc.RevisionLog = append(doc.RevisionLog, models.Revision{
			ID:              uuid.NewString(),
			AuthorID:        userID,
			AuthorName:      userName,
			Timestamp:       now,
			PreviousContent: doc.Content,
			NewContent:      newContent,
		})
		doc.Content = newContent
	}
	doc.UpdatedAt = time.Now().UTC()

	if err := s.documentRepo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentUpdateFailed, err)
	}

	s.audit(ctx, models.AuditLog{
		UserID:     userID,
		Action:     "DOCUMENT_SAVE",
		TargetType: "DOCUMENT",
		TargetID:   doc.ID,
		Details:    map[string]interface{}{"asOwner": permission == PermissionOwner},
	})

	return doc, nil
}

// DeleteDocument removes a document if the acting user is the owner.
func (s *documentService) DeleteDocument(ctx context.Context, userID, documentID string) error {
	if s.documentRepo == nil {
		return errors.New("documentService: component not initialized")
	}

	doc, permission, err := s.fetch(ctx, userID, documentID)
	if err != nil {
		return err
	}
	if permission != PermissionOwner {
		return fmt.Errorf("%w: user '%s' is not owner of document '%s'", ErrForbidden, userID, documentID)
	}

	if err := s.documentRepo.Delete(ctx, documentID); err != nil {
		return fmt.Errorf("%w: %w (documentID: %s)", ErrDocumentDeletionFailed, err, documentID)
	}

	s.audit(ctx, models.AuditLog{
		UserID:     userID,
		Action:     "DOCUMENT_DELETE",
		TargetType: "DOCUMENT",
		TargetID:   documentID,
		Details:    map[string]interface{}{"deleted_title": doc.Title},
	})

	return nil
}

// ShareDocument grants a principal access to a document. Only the owner may
// share. Sharing with an already-shared principal replaces their entry in
// place, preserving the order of the share list.
func (s *documentService) ShareDocument(ctx context.Context, ownerID, documentID string, req models.ShareDocumentRequest) (*models.Document, error) {
	if s.documentRepo == nil || s.userRepo == nil {
		return nil, errors.New("documentService: component not initialized")
	}

	doc, permission, err := s.fetch(ctx, ownerID, documentID)
	if err != nil {
		return nil, err
	}
	if permission != PermissionOwner {
		return nil, fmt.Errorf("%w: user '%s' is not owner of document '%s', cannot share", ErrForbidden, ownerID, documentID)
	}

	if req.PrincipalID == ownerID {
		return nil, ErrCannotShareWithSelf
	}
	if req.Permission != models.PermissionRead && req.Permission != models.PermissionEdit {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidPermissionLevel, req.Permission)
	}

	targetUser, err := s.userRepo.GetByID(ctx, req.PrincipalID)
	if err != nil || targetUser == nil {
		return nil, fmt.Errorf("%w: user '%s'", ErrShareTargetNotFound, req.PrincipalID)
	}

	entry := models.ShareEntry{
		PrincipalID: req.PrincipalID,
		DisplayName: targetUser.DisplayName,
		Permission:  req.Permission,
	}
	replaced := false
	for i := range doc.SharedWith {
		if doc.SharedWith[i].PrincipalID == req.PrincipalID {
			doc.SharedWith[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		doc.SharedWith = append(doc.SharedWith, entry)
	}
	doc.UpdatedAt = time.Now().UTC()

	if err := s.documentRepo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("%w for sharing: %w", ErrDocumentUpdateFailed, err)
	}

	s.audit(ctx, models.AuditLog{
		UserID:     ownerID,
		Action:     "DOCUMENT_SHARE",
		TargetType: "DOCUMENT",
		TargetID:   documentID,
		Details: map[string]interface{}{
			"shared_with_user_id": req.PrincipalID,
			"permission_level":    req.Permission,
		},
	})

	return doc, nil
}

// RemoveShare revokes a principal's access to a document. Owner only.
func (s *documentService) RemoveShare(ctx context.Context, ownerID, documentID, targetPrincipalID string) error {
	if s.documentRepo == nil {
		return errors.New("documentService: component not initialized")
	}

	doc, permission, err := s.fetch(ctx, ownerID, documentID)
	if err != nil {
		return err
	}
	if permission != PermissionOwner {
		return fmt.Errorf("%w: user '%s' is not owner of document '%s'", ErrForbidden, ownerID, documentID)
	}
	if targetPrincipalID == ownerID {
		return errors.New("cannot remove owner's access from their own document")
	}

	found := false
	kept := doc.SharedWith[:0]
	for _, entry := range doc.SharedWith {
		if entry.PrincipalID == targetPrincipalID {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return fmt.Errorf("user '%s' is not currently shared on document '%s', nothing to remove", targetPrincipalID, documentID)
	}
	doc.SharedWith = kept
	doc.UpdatedAt = time.Now().UTC()

	if err := s.documentRepo.Update(ctx, doc); err != nil {
		return fmt.Errorf("%w for removing share: %w", ErrDocumentUpdateFailed, err)
	}

	s.audit(ctx, models.AuditLog{
		UserID:     ownerID,
		Action:     "DOCUMENT_UNSHARE",
		TargetType: "DOCUMENT",
		TargetID:   documentID,
		Details:    map[string]interface{}{"removed_user_id": targetPrincipalID},
	})

	return nil
}

// AddHighlight creates a highlight over the current content snapshot.
// Requires edit or owner permission; the range is validated before any
// state is stored.
func (s *documentService) AddHighlight(ctx context.Context, userID, userName, documentID string, req models.CreateHighlightRequest) (*models.Highlight, error) {
	if s.documentRepo == nil {
		return nil, errors.New("documentService: component not initialized")
	}

	doc, permission, err := s.fetch(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}
	if !permission.CanMutate() {
		return nil, fmt.Errorf("%w: user '%s' has read-only access to document '%s'", ErrForbidden, userID, documentID)
	}

	highlight, err := NewHighlight(doc.Content, req.Start, req.End, req.Type, req.Note, userID, userName)
	if err != nil {
		return nil, err
	}

	doc.Highlights = append(doc.Highlights, highlight)
	doc.UpdatedAt = time.Now().UTC()

	if err := s.documentRepo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("%w for highlight creation: %w", ErrDocumentUpdateFailed, err)
	}

	s.audit(ctx, models.AuditLog{
		UserID:     userID,
		Action:     "HIGHLIGHT_CREATE",
		TargetType: "HIGHLIGHT",
		TargetID:   highlight.ID,
		Details: map[string]interface{}{
			"documentId": documentID,
			"start":      highlight.Start,
			"end":        highlight.End,
			"type":       highlight.Type,
		},
	})

	return &highlight, nil
}

// RemoveHighlight deletes a highlight by id. Requires edit or owner
// permission. Other highlights keep their stored offsets.
func (s *documentService) RemoveHighlight(ctx context.Context, userID, documentID, highlightID string) error {
	if s.documentRepo == nil {
		return errors.New("documentService: component not initialized")
	}

	doc, permission, err := s.fetch(ctx, userID, documentID)
	if err != nil {
		return err
	}
	if !permission.CanMutate() {
		return fmt.Errorf("%w: user '%s' has read-only access to document '%s'", ErrForbidden, userID, documentID)
	}

	remaining, err := RemoveHighlightByID(doc.Highlights, highlightID)
	if err != nil {
		return err
	}
	doc.Highlights = remaining
	doc.UpdatedAt = time.Now().UTC()

	if err := s.documentRepo.Update(ctx, doc); err != nil {
		return fmt.Errorf("%w for highlight removal: %w", ErrDocumentUpdateFailed, err)
	}

	s.audit(ctx, models.AuditLog{
		UserID:     userID,
		Action:     "HIGHLIGHT_DELETE",
		TargetType: "HIGHLIGHT",
		TargetID:   highlightID,
		Details:    map[string]interface{}{"documentId": documentID},
	})

	return nil
}

// AnnotatedContent renders the current snapshot with all highlights
// projected onto it.
func (s *documentService) AnnotatedContent(ctx context.Context, userID, documentID string) (string, error) {
	if s.documentRepo == nil {
		return "", errors.New("documentService: documentRepo not initialized")
	}
	doc, _, err := s.fetch(ctx, userID, documentID)
	if err != nil {
		return "", err
	}
	return AnnotateContent(doc.Content, doc.Highlights), nil
}

// ContentChanges returns the line indices changed by the most recent
// non-owner edit, comparing previousContent against content. Before any
// such edit has happened there is nothing to compare and the result is empty.
func (s *documentService) ContentChanges(ctx context.Context, userID, documentID string) ([]int, error) {
	if s.documentRepo == nil {
		return nil, errors.New("documentService: documentRepo not initialized")
	}
	doc, _, err := s.fetch(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}
	if doc.PreviousContent == "" && len(doc.RevisionLog) == 0 {
		return []int{}, nil
	}
	return ChangedLines(doc.PreviousContent, doc.Content), nil
}

// RevisionHistory returns the full revision log. Owner only: the complete
// change-history view is an owner affordance.
func (s *documentService) RevisionHistory(ctx context.Context, userID, documentID string) ([]models.Revision, error) {
	if s.documentRepo == nil {
		return nil, errors.New("documentService: documentRepo not initialized")
	}
	doc, permission, err := s.fetch(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}
	if permission != PermissionOwner {
		return nil, fmt.Errorf("%w: user '%s' may not view the revision history of document '%s'", ErrForbidden, userID, documentID)
	}
	return doc.RevisionLog, nil
}

// RevisionChanges replays one historical revision as a set of changed line
// indices. Owner only, same gate as the history itself.
func (s *documentService) RevisionChanges(ctx context.Context, userID, documentID, revisionID string) ([]int, error) {
	if s.documentRepo == nil {
		return nil, errors.New("documentService: documentRepo not initialized")
	}
	doc, permission, err := s.fetch(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}
	if permission != PermissionOwner {
		return nil, fmt.Errorf("%w: user '%s' may not view revisions of document '%s'", ErrForbidden, userID, documentID)
	}
	for _, rev := range doc.RevisionLog {
		if rev.ID == revisionID {
			return ChangedLines(rev.PreviousContent, rev.NewContent), nil
		}
	}
	return nil, fmt.Errorf("%w: id '%s' on document '%s'", ErrRevisionNotFound, revisionID, documentID)
}
