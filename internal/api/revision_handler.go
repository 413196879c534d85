package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clausecraft-backend-go/internal/core"
)

// RevisionHandler serves the revision log and the changed-line views that
// drive the "what changed" rendering.
type RevisionHandler struct {
	documentService core.DocumentService
}

// NewRevisionHandler creates a new RevisionHandler.
func NewRevisionHandler(ds core.DocumentService) *RevisionHandler {
	return &RevisionHandler{documentService: ds}
}

// GetContentChanges handles GET /documents/:documentId/changes.
// Compares the snapshot before the most recent non-owner edit against the
// current content.
func (h *RevisionHandler) GetContentChanges(c *gin.Context) {
	userID, _, ok := actingUser(c)
	if !ok {
		return
	}
	documentID := c.Param("documentId")
	if documentID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Document ID is required"})
		return
	}

	changed, err := h.documentService.ContentChanges(c.Request.Context(), userID, documentID)
	if err != nil {
		mapDocumentErrorToStatus(c, err)
		return
	}
	if changed == nil {
		changed = []int{}
	}
	c.JSON(http.StatusOK, ChangedLinesResponse{ChangedLines: changed})
}

// ListRevisions handles GET /documents/:documentId/revisions. Owner only.
func (h *RevisionHandler) ListRevisions(c *gin.Context) {
	userID, _, ok := actingUser(c)
	if !ok {
		return
	}
	documentID := c.Param("documentId")
	if documentID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Document ID is required"})
		return
	}

	revisions, err := h.documentService.RevisionHistory(c.Request.Context(), userID, documentID)
	if err != nil {
		mapDocumentErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, revisions)
}

// GetRevisionChanges handles GET /documents/:documentId/revisions/:revisionId/changes.
// Replays one historical revision as changed line indices. Owner only.
func (h *RevisionHandler) GetRevisionChanges(c *gin.Context) {
	userID, _, ok := actingUser(c)
	if !ok {
		return
	}
	documentID := c.Param("documentId")
	revisionID := c.Param("revisionId")
	if documentID == "" || revisionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Document ID and revision ID are required"})
		return
	}

	changed, err := h.documentService.RevisionChanges(c.Request.Context(), userID, documentID, revisionID)
	if err != nil {
		mapDocumentErrorToStatus(c, err)
		return
	}
	if changed == nil {
		changed = []int{}
	}
	c.JSON(http.StatusOK, ChangedLinesResponse{ChangedLines: changed})
}
