package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"clausecraft-backend-go/internal/core"
	"clausecraft-backend-go/internal/models"
)

// stubDocumentService lets each test wire in just the methods it needs.
// Unwired methods fail loudly instead of returning zero values silently.
type stubDocumentService struct {
	createDocument  func(ctx context.Context, userID, userName string, req models.CreateDocumentRequest) (*models.Document, error)
	getDocument     func(ctx context.Context, userID, documentID string) (*models.Document, core.Permission, error)
	saveContent     func(ctx context.Context, userID, userName, documentID, newContent string) (*models.Document, error)
	addHighlight    func(ctx context.Context, userID, userName, documentID string, req models.CreateHighlightRequest) (*models.Highlight, error)
	contentChanges  func(ctx context.Context, userID, documentID string) ([]int, error)
	revisionHistory func(ctx context.Context, userID, documentID string) ([]models.Revision, error)
}

func (s *stubDocumentService) CreateDocument(ctx context.Context, userID, userName string, req models.CreateDocumentRequest) (*models.Document, error) {
	if s.createDocument == nil {
		panic("CreateDocument not stubbed")
	}
	return s.createDocument(ctx, userID, userName, req)
}

func (s *stubDocumentService) GetDocument(ctx context.Context, userID, documentID string) (*models.Document, core.Permission, error) {
	if s.getDocument == nil {
		panic("GetDocument not stubbed")
	}
	return s.getDocument(ctx, userID, documentID)
}

func (s *stubDocumentService) ListDocuments(ctx context.Context, userID string, paginationParams map[string]string) ([]*models.Document, error) {
	panic("ListDocuments not stubbed")
}

func (s *stubDocumentService) SaveContent(ctx context.Context, userID, userName, documentID, newContent string) (*models.Document, error) {
	if s.saveContent == nil {
		panic("SaveContent not stubbed")
	}
	return s.saveContent(ctx, userID, userName, documentID, newContent)
}

func (s *stubDocumentService) DeleteDocument(ctx context.Context, userID, documentID string) error {
	panic("DeleteDocument not stubbed")
}

func (s *stubDocumentService) ShareDocument(ctx context.Context, ownerID, documentID string, req models.ShareDocumentRequest) (*models.Document, error) {
	panic("ShareDocument not stubbed")
}

func (s *stubDocumentService) RemoveShare(ctx context.Context, ownerID, documentID, targetPrincipalID string) error {
	panic("RemoveShare not stubbed")
}

func (s *stubDocumentService) AddHighlight(ctx context.Context, userID, userName, documentID string, req models.CreateHighlightRequest) (*models.Highlight, error) {
	if s.addHighlight == nil {
		panic("AddHighlight not stubbed")
	}
	return s.addHighlight(ctx, userID, userName, documentID, req)
}

func (s *stubDocumentService) RemoveHighlight(ctx context.Context, userID, documentID, highlightID string) error {
	panic("RemoveHighlight not stubbed")
}

func (s *stubDocumentService) AnnotatedContent(ctx context.Context, userID, documentID string) (string, error) {
	panic("AnnotatedContent not stubbed")
}

func (s *stubDocumentService) ContentChanges(ctx context.Context, userID, documentID string) ([]int, error) {
	if s.contentChanges == nil {
		panic("ContentChanges not stubbed")
	}
	return s.contentChanges(ctx, userID, documentID)
}

func (s *stubDocumentService) RevisionHistory(ctx context.Context, userID, documentID string) ([]models.Revision, error) {
	if s.revisionHistory == nil {
		panic("RevisionHistory not stubbed")
	}
	return s.revisionHistory(ctx, userID, documentID)
}

func (s *stubDocumentService) RevisionChanges(ctx context.Context, userID, documentID, revisionID string) ([]int, error) {
	panic("RevisionChanges not stubbed")
}

// testAuth mimics the auth middleware by injecting the principal directly.
func testAuth(userID, displayName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("userDisplayName", displayName)
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetDocumentReturnsPermissionEnvelope(t *testing.T) {
	svc := &stubDocumentService{
		getDocument: func(ctx context.Context, userID, documentID string) (*models.Document, core.Permission, error) {
			return &models.Document{ID: documentID, OwnerID: "owner-1", Title: "NDA", Content: "text"}, core.PermissionEdit, nil
		},
	}
	router := newTestRouter()
	h := NewDocumentHandler(svc)
	router.GET("/documents/:documentId", testAuth("editor-1", "Ed Editor"), h.GetDocument)

	w := doJSON(t, router, http.MethodGet, "/documents/doc-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp DocumentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Permission != core.PermissionEdit {
		t.Errorf("permission = %q, want edit", resp.Permission)
	}
	if !resp.Capabilities.CanEditContent || !resp.Capabilities.CanAnnotate {
		t.Errorf("editor capabilities missing: %+v", resp.Capabilities)
	}
	if resp.Capabilities.CanManageSharing || resp.Capabilities.CanViewHistory {
		t.Errorf("editor has owner capabilities: %+v", resp.Capabilities)
	}
	if resp.Document == nil || resp.Document.Title != "NDA" {
		t.Errorf("document missing from envelope: %+v", resp.Document)
	}
}

func TestGetDocumentErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", core.ErrDocumentNotFound, http.StatusNotFound},
		{"forbidden", core.ErrForbidden, http.StatusForbidden},
		{"internal", errors.New("firestore exploded"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubDocumentService{
				getDocument: func(ctx context.Context, userID, documentID string) (*models.Document, core.Permission, error) {
					return nil, core.PermissionRead, fmt.Errorf("wrapped: %w", tc.err)
				},
			}
			router := newTestRouter()
			h := NewDocumentHandler(svc)
			router.GET("/documents/:documentId", testAuth("user-1", "U"), h.GetDocument)

			w := doJSON(t, router, http.MethodGet, "/documents/doc-1", "")
			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d; body: %s", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
}

func TestGetDocumentRequiresAuthContext(t *testing.T) {
	router := newTestRouter()
	h := NewDocumentHandler(&stubDocumentService{})
	// No auth middleware: the handler must refuse before touching the service.
	router.GET("/documents/:documentId", h.GetDocument)

	w := doJSON(t, router, http.MethodGet, "/documents/doc-1", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestCreateDocumentPassesPrincipal(t *testing.T) {
	var gotUserID, gotUserName string
	svc := &stubDocumentService{
		createDocument: func(ctx context.Context, userID, userName string, req models.CreateDocumentRequest) (*models.Document, error) {
			gotUserID, gotUserName = userID, userName
			return &models.Document{ID: "doc-1", OwnerID: userID, Title: req.Title, Content: req.Content}, nil
		},
	}
	router := newTestRouter()
	h := NewDocumentHandler(svc)
	router.POST("/documents", testAuth("owner-1", "Olivia Owner"), h.CreateDocument)

	w := doJSON(t, router, http.MethodPost, "/documents", `{"title":"MSA","content":"clause 1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", w.Code, w.Body.String())
	}
	if gotUserID != "owner-1" || gotUserName != "Olivia Owner" {
		t.Errorf("principal = %q/%q, want owner-1/Olivia Owner", gotUserID, gotUserName)
	}
}

func TestCreateDocumentRejectsMissingTitle(t *testing.T) {
	router := newTestRouter()
	h := NewDocumentHandler(&stubDocumentService{})
	router.POST("/documents", testAuth("owner-1", "O"), h.CreateDocument)

	w := doJSON(t, router, http.MethodPost, "/documents", `{"content":"no title"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSaveContentForbiddenMapsTo403(t *testing.T) {
	svc := &stubDocumentService{
		saveContent: func(ctx context.Context, userID, userName, documentID, newContent string) (*models.Document, error) {
			return nil, fmt.Errorf("%w: read-only", core.ErrForbidden)
		},
	}
	router := newTestRouter()
	h := NewDocumentHandler(svc)
	router.PUT("/documents/:documentId/content", testAuth("reader-1", "Rita"), h.SaveContent)

	w := doJSON(t, router, http.MethodPut, "/documents/doc-1/content", `{"content":"attempted edit"}`)
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403; body: %s", w.Code, w.Body.String())
	}
}

func TestCreateHighlightInvalidRangeMapsTo400(t *testing.T) {
	svc := &stubDocumentService{
		addHighlight: func(ctx context.Context, userID, userName, documentID string, req models.CreateHighlightRequest) (*models.Highlight, error) {
			return nil, fmt.Errorf("%w: start=9 end=3", core.ErrInvalidRange)
		},
	}
	router := newTestRouter()
	h := NewAnnotationHandler(svc)
	router.POST("/documents/:documentId/highlights", testAuth("editor-1", "Ed"), h.CreateHighlight)

	w := doJSON(t, router, http.MethodPost, "/documents/doc-1/highlights", `{"start":9,"end":3,"type":"important"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400; body: %s", w.Code, w.Body.String())
	}
}

func TestGetContentChangesNormalizesNil(t *testing.T) {
	svc := &stubDocumentService{
		contentChanges: func(ctx context.Context, userID, documentID string) ([]int, error) {
			return nil, nil
		},
	}
	router := newTestRouter()
	h := NewRevisionHandler(svc)
	router.GET("/documents/:documentId/changes", testAuth("owner-1", "O"), h.GetContentChanges)

	w := doJSON(t, router, http.MethodGet, "/documents/doc-1/changes", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"changedLines":[]`) {
		t.Errorf("nil changed lines should serialize as an empty array, got %s", w.Body.String())
	}
}
