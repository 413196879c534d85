package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"clausecraft-backend-go/internal/models"
)

const documentsCollection = "documents"

// firestoreDocumentRepository implements the DocumentRepository interface using Firestore.
type firestoreDocumentRepository struct {
	client *firestore.Client
}

// NewFirestoreDocumentRepository creates a new instance of firestoreDocumentRepository.
func NewFirestoreDocumentRepository(client *firestore.Client) DocumentRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for DocumentRepository.")
	}
	return &firestoreDocumentRepository{client: client}
}

// Create adds a new document with an auto-generated ID and sets doc.ID to it.
func (r *firestoreDocumentRepository) Create(ctx context.Context, doc *models.Document) (string, error) {
	docRef := r.client.Collection(documentsCollection).NewDoc()
	doc.ID = docRef.ID

	_, err := docRef.Create(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create document: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a document from Firestore by its ID.
func (r *firestoreDocumentRepository) GetByID(ctx context.Context, documentID string) (*models.Document, error) {
	if documentID == "" {
		return nil, errors.New("documentID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(documentsCollection).Doc(documentID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("document with ID '%s' not found: %w", documentID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get document with ID '%s': %w", documentID, err)
	}

	var doc models.Document
	if err := docSnap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode document data for ID '%s': %w", documentID, err)
	}
	doc.ID = docSnap.Ref.ID

	return &doc, nil
}

// GetByOwnerID retrieves all documents owned by a specific user.
// Pagination is basic: supports "limit" and "startAfter" (document ID).
func (r *firestoreDocumentRepository) GetByOwnerID(ctx context.Context, ownerID string, paginationParams map[string]string) ([]*models.Document, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty for GetByOwnerID operation")
	}

	query := r.client.Collection(documentsCollection).Where("ownerId", "==", ownerID).OrderBy("createdAt", firestore.Desc)

	if limitStr, ok := paginationParams["limit"]; ok {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			query = query.Limit(limit)
		}
	}
	if startAfterDocID, ok := paginationParams["startAfter"]; ok && startAfterDocID != "" {
		startAfterSnap, err := r.client.Collection(documentsCollection).Doc(startAfterDocID).Get(ctx)
		if err == nil {
			query = query.StartAfter(startAfterSnap)
		} else {
			log.Printf("Warning: Could not fetch startAfter document '%s': %v. Pagination may be affected.", startAfterDocID, err)
		}
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var docs []*models.Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate documents for owner '%s': %w", ownerID, err)
		}

		var doc models.Document
		if err := snap.DataTo(&doc); err != nil {
			log.Printf("Error decoding document data (ID: %s) for owner '%s': %v. Skipping.", snap.Ref.ID, ownerID, err)
			continue
		}
		doc.ID = snap.Ref.ID
		docs = append(docs, &doc)
	}

	return docs, nil
}

// Update replaces an existing document's stored state with the given
// aggregate. A plain Set (no merge) writes the whole document in one call,
// so content and revision log always land together or not at all.
func (r *firestoreDocumentRepository) Update(ctx context.Context, doc *models.Document) error {
	if doc.ID == "" {
		return errors.New("document ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(documentsCollection).Doc(doc.ID).Set(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to update document with ID '%s': %w", doc.ID, err)
	}
	return nil
}

// Delete removes a document from Firestore.
func (r *firestoreDocumentRepository) Delete(ctx context.Context, documentID string) error {
	if documentID == "" {
		return errors.New("documentID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(documentsCollection).Doc(documentID).Delete(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("document with ID '%s' not found for deletion: %w", documentID, ErrNotFound)
		}
		return fmt.Errorf("failed to delete document with ID '%s': %w", documentID, err)
	}
	return nil
}
