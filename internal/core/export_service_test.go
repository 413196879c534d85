package core

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"clausecraft-backend-go/internal/export"
	"clausecraft-backend-go/internal/models"
)

func TestExportRendersSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/render" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var req struct {
			DocumentID string `json:"documentId"`
			Content    string `json:"content"`
			Format     string `json:"format"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Format != "pdf" || req.Content != "contract body" {
			t.Errorf("unexpected render request: %+v", req)
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-fake"))
	}))
	defer server.Close()

	repo := newFakeDocumentRepo()
	docID := seedDocument(repo, models.Document{OwnerID: "owner-1", Content: "contract body"})
	audit := &fakeAuditService{}
	svc := NewExportService(repo, export.NewClient(server.URL), audit)

	artifact, contentType, err := svc.Export(context.Background(), "reader-2", docID, "pdf")
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if string(artifact) != "%PDF-fake" {
		t.Errorf("artifact = %q", artifact)
	}
	if contentType != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", contentType)
	}
	if len(audit.entries) != 1 || audit.entries[0].Action != "DOCUMENT_EXPORT" {
		t.Errorf("expected one DOCUMENT_EXPORT audit entry, got %+v", audit.entries)
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	repo := newFakeDocumentRepo()
	docID := seedDocument(repo, models.Document{OwnerID: "owner-1", Content: "text"})
	svc := NewExportService(repo, export.NewClient("http://127.0.0.1:0"), &fakeAuditService{})

	if _, _, err := svc.Export(context.Background(), "owner-1", docID, "xlsx"); !errors.Is(err, ErrInvalidExportFormat) {
		t.Errorf("got %v, want ErrInvalidExportFormat", err)
	}
}

func TestExportMissingDocument(t *testing.T) {
	svc := NewExportService(newFakeDocumentRepo(), export.NewClient("http://127.0.0.1:0"), &fakeAuditService{})
	if _, _, err := svc.Export(context.Background(), "owner-1", "missing-doc", "pdf"); !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("got %v, want ErrDocumentNotFound", err)
	}
}
