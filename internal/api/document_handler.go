package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"clausecraft-backend-go/internal/core"
	"clausecraft-backend-go/internal/models"
)

// DocumentHandler handles API endpoints related to documents.
type DocumentHandler struct {
	documentService core.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(ds core.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: ds}
}

// mapDocumentErrorToStatus maps errors from core.DocumentService to HTTP status codes and ErrorResponse.
func mapDocumentErrorToStatus(c *gin.Context, err error) {
	var statusCode int
	var errResponse ErrorResponse

	switch {
	case errors.Is(err, core.ErrDocumentNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: core.ErrDocumentNotFound.Error()}
	case errors.Is(err, core.ErrRevisionNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: core.ErrRevisionNotFound.Error()}
	case errors.Is(err, core.ErrHighlightNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: core.ErrHighlightNotFound.Error()}
	case errors.Is(err, core.ErrForbidden):
		statusCode = http.StatusForbidden
		errResponse = ErrorResponse{Error: core.ErrForbidden.Error()}
	case errors.Is(err, core.ErrInvalidRange):
		statusCode = http.StatusBadRequest
		errResponse = ErrorResponse{Error: "Invalid highlight range", Details: err.Error()}
	case errors.Is(err, core.ErrInvalidHighlightType):
		statusCode = http.StatusBadRequest
		errResponse = ErrorResponse{Error: core.ErrInvalidHighlightType.Error()}
	case errors.Is(err, core.ErrCannotShareWithSelf):
		statusCode = http.StatusBadRequest
		errResponse = ErrorResponse{Error: core.ErrCannotShareWithSelf.Error()}
	case errors.Is(err, core.ErrShareTargetNotFound):
		statusCode = http.StatusBadRequest
		errResponse = ErrorResponse{Error: core.ErrShareTargetNotFound.Error()}
	case errors.Is(err, core.ErrInvalidPermissionLevel):
		statusCode = http.StatusBadRequest
		errResponse = ErrorResponse{Error: core.ErrInvalidPermissionLevel.Error()}
	default:
		log.Printf("Internal Server Error: %v", err)
		statusCode = http.StatusInternalServerError
		errResponse = ErrorResponse{Error: "An unexpected internal server error occurred."}
	}
	c.JSON(statusCode, errResponse)
}

// actingUser pulls the authenticated principal out of the Gin context.
// The second value is false if the auth middleware did not run; callers
// must return immediately in that case, the response is already written.
func actingUser(c *gin.Context) (userID, displayName string, ok bool) {
	rawUserID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return "", "", false
	}
	userID, valid := rawUserID.(string)
	if !valid || userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID format in context"})
		return "", "", false
	}
	rawName, _ := c.Get("userDisplayName")
	displayName, _ = rawName.(string)
	return userID, displayName, true
}

// CreateDocument handles POST /documents
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	userID, userName, ok := actingUser(c)
	if !ok {
		return
	}

	var req models.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	createdDoc, err := h.documentService.CreateDocument(c.Request.Context(), userID, userName, req)
	if err != nil {
		mapDocumentErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, createdDoc)
}

// GetDocument handles GET /documents/:documentId
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	userID, _, ok := actingUser(c)
	if !ok {
		return
	}
	documentID := c.Param("documentId")
	if documentID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Document ID is required"})
		return
	}

	doc, permission, err := h.documentService.GetDocument(c.Request.Context(), userID, documentID)
	if err != nil {
		mapDocumentErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, DocumentResponse{
		Document:     doc,
		Permission:   permission,
		Capabilities: core.CapabilitiesFor(permission),
	})
}

// ListDocuments handles GET /documents
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	userID, _, ok := actingUser(c)
	if !ok {
		return
	}

	paginationParams := make(map[string]string)
	if c.Query("limit") != "" {
		paginationParams["limit"] = c.Query("limit")
	}
	if c.Query("startAfter") != "" {
		paginationParams["startAfter"] = c.Query("startAfter")
	}

	docs, err := h.documentService.ListDocuments(c.Request.Context(), userID, paginationParams)
	if err != nil {
		mapDocumentErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// SaveContent handles PUT /documents/:documentId/content
func (h *DocumentHandler) SaveContent(c *gin.Context) {
	userID, userName, ok := actingUser(c)
	if !ok {
		return
	}
	documentID := c.Param("documentId")
	if documentID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Document ID is required"})
		return
	}

	var req models.SaveContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	doc, err := h.documentService.SaveContent(c.Request.Context(), userID, userName, documentID, req.Content)
	if err != nil {
		mapDocumentErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// DeleteDocument handles DELETE /documents/:documentId
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	userID, _, ok := actingUser(c)
	if !ok {
		return
	}
	documentID := c.Param("documentId")
	if documentID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Document ID is required"})
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), userID, documentID); err != nil {
		mapDocumentErrorToStatus(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ShareDocument handles POST /documents/:documentId/share
func (h *DocumentHandler) ShareDocument(c *gin.Context) {
	ownerID, _, ok := actingUser(c)
	if !ok {
		return
	}
	documentID := c.Param("documentId")
	if documentID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Document ID is required"})
		return
	}

	var req models.ShareDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	if req.Permission != models.PermissionRead && req.Permission != models.PermissionEdit {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid permission level. Must be 'read' or 'edit'."})
		return
	}

	doc, err := h.documentService.ShareDocument(c.Request.Context(), ownerID, documentID, req)
	if err != nil {
		mapDocumentErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Document shared successfully", Data: doc.SharedWith})
}

// RemoveShare handles DELETE /documents/:documentId/share/:principalId
func (h *DocumentHandler) RemoveShare(c *gin.Context) {
	ownerID, _, ok := actingUser(c)
	if !ok {
		return
	}
	documentID := c.Param("documentId")
	targetPrincipalID := c.Param("principalId")
	if documentID == "" || targetPrincipalID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Document ID and principal ID are required"})
		return
	}

	if err := h.documentService.RemoveShare(c.Request.Context(), ownerID, documentID, targetPrincipalID); err != nil {
		mapDocumentErrorToStatus(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
