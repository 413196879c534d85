package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"clausecraft-backend-go/internal/core"
	"clausecraft-backend-go/internal/models"
)

// SessionHandler exposes the per-client editing session with its local
// undo/redo buffer. Sessions live in memory only; saving the document is a
// separate, explicit call and is never triggered from here.
type SessionHandler struct {
	documentService core.DocumentService
	sessions        *core.SessionManager
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(ds core.DocumentService, sm *core.SessionManager) *SessionHandler {
	return &SessionHandler{documentService: ds, sessions: sm}
}

func mapSessionErrorToStatus(c *gin.Context, err error) {
	if errors.Is(err, core.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrSessionNotFound.Error()})
		return
	}
	mapDocumentErrorToStatus(c, err)
}

func sessionResponse(session *core.EditSession) SessionResponse {
	return SessionResponse{
		SessionID: session.ID,
		Content:   session.History.Current(),
		CanUndo:   session.History.CanUndo(),
		CanRedo:   session.History.CanRedo(),
		CreatedAt: session.CreatedAt,
	}
}

// OpenSession handles POST /documents/:documentId/sessions.
// Seeds the undo history with the document's current content snapshot.
func (h *SessionHandler) OpenSession(c *gin.Context) {
	userID, _, ok := actingUser(c)
	if !ok {
		return
	}
	documentID := c.Param("documentId")
	if documentID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Document ID is required"})
		return
	}

	doc, _, err := h.documentService.GetDocument(c.Request.Context(), userID, documentID)
	if err != nil {
		mapDocumentErrorToStatus(c, err)
		return
	}

	session := h.sessions.Open(doc.ID, userID, doc.Content)
	c.JSON(http.StatusCreated, sessionResponse(session))
}

// PushSnapshot handles POST /sessions/:sessionId/push
func (h *SessionHandler) PushSnapshot(c *gin.Context) {
	userID, _, ok := actingUser(c)
	if !ok {
		return
	}
	sessionID := c.Param("sessionId")

	var req models.SessionPushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	content, err := h.sessions.Push(sessionID, userID, req.Content)
	if err != nil {
		mapSessionErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Snapshot pushed", Data: content})
}

// Undo handles POST /sessions/:sessionId/undo
func (h *SessionHandler) Undo(c *gin.Context) {
	userID, _, ok := actingUser(c)
	if !ok {
		return
	}
	content, err := h.sessions.Undo(c.Param("sessionId"), userID)
	if err != nil {
		mapSessionErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Undo applied", Data: content})
}

// Redo handles POST /sessions/:sessionId/redo
func (h *SessionHandler) Redo(c *gin.Context) {
	userID, _, ok := actingUser(c)
	if !ok {
		return
	}
	content, err := h.sessions.Redo(c.Param("sessionId"), userID)
	if err != nil {
		mapSessionErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Redo applied", Data: content})
}

// CloseSession handles DELETE /sessions/:sessionId
func (h *SessionHandler) CloseSession(c *gin.Context) {
	userID, _, ok := actingUser(c)
	if !ok {
		return
	}
	if err := h.sessions.Close(c.Param("sessionId"), userID); err != nil {
		mapSessionErrorToStatus(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
