package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"clausecraft-backend-go/internal/core"
	"clausecraft-backend-go/internal/models"
)

// AssistHandler handles the AI-assist and export endpoints for a document.
type AssistHandler struct {
	assistService core.AssistService
	exportService core.ExportService
}

// NewAssistHandler creates a new AssistHandler.
func NewAssistHandler(as core.AssistService, es core.ExportService) *AssistHandler {
	return &AssistHandler{assistService: as, exportService: es}
}

// ExplainSelection handles POST /documents/:documentId/assist
func (h *AssistHandler) ExplainSelection(c *gin.Context) {
	userID, _, ok := actingUser(c)
	if !ok {
		return
	}
	documentID := c.Param("documentId")
	if documentID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Document ID is required"})
		return
	}

	var req models.AssistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	explanation, err := h.assistService.ExplainSelection(c.Request.Context(), userID, documentID, req.SelectedText)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrEmptySelection):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: core.ErrEmptySelection.Error()})
		default:
			mapDocumentErrorToStatus(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, AssistResponse{Explanation: explanation})
}

// ExportDocument handles POST /documents/:documentId/export.
// Streams the rendered artifact back as an attachment.
func (h *AssistHandler) ExportDocument(c *gin.Context) {
	userID, _, ok := actingUser(c)
	if !ok {
		return
	}
	documentID := c.Param("documentId")
	if documentID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Document ID is required"})
		return
	}

	var req models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	artifact, contentType, err := h.exportService.Export(c.Request.Context(), userID, documentID, req.Format)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidExportFormat):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: core.ErrInvalidExportFormat.Error()})
		default:
			mapDocumentErrorToStatus(c, err)
		}
		return
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, documentID, req.Format))
	c.Data(http.StatusOK, contentType, artifact)
}
