package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clausecraft-backend-go/internal/core"
	"clausecraft-backend-go/internal/models"
)

// AnnotationHandler handles highlight creation/removal and the annotated
// content view for a document.
type AnnotationHandler struct {
	documentService core.DocumentService
}

// NewAnnotationHandler creates a new AnnotationHandler.
func NewAnnotationHandler(ds core.DocumentService) *AnnotationHandler {
	return &AnnotationHandler{documentService: ds}
}

// CreateHighlight handles POST /documents/:documentId/highlights
func (h *AnnotationHandler) CreateHighlight(c *gin.Context) {
	userID, userName, ok := actingUser(c)
	if !ok {
		return
	}
	documentID := c.Param("documentId")
	if documentID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Document ID is required"})
		return
	}

	var req models.CreateHighlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	highlight, err := h.documentService.AddHighlight(c.Request.Context(), userID, userName, documentID, req)
	if err != nil {
		mapDocumentErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, highlight)
}

// DeleteHighlight handles DELETE /documents/:documentId/highlights/:highlightId
func (h *AnnotationHandler) DeleteHighlight(c *gin.Context) {
	userID, _, ok := actingUser(c)
	if !ok {
		return
	}
	documentID := c.Param("documentId")
	highlightID := c.Param("highlightId")
	if documentID == "" || highlightID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Document ID and highlight ID are required"})
		return
	}

	if err := h.documentService.RemoveHighlight(c.Request.Context(), userID, documentID, highlightID); err != nil {
		mapDocumentErrorToStatus(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetAnnotatedContent handles GET /documents/:documentId/annotated
func (h *AnnotationHandler) GetAnnotatedContent(c *gin.Context) {
	userID, _, ok := actingUser(c)
	if !ok {
		return
	}
	documentID := c.Param("documentId")
	if documentID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Document ID is required"})
		return
	}

	content, err := h.documentService.AnnotatedContent(c.Request.Context(), userID, documentID)
	if err != nil {
		mapDocumentErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, AnnotatedContentResponse{Content: content})
}
