package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"clausecraft-backend-go/internal/core"
)

// AuthHandler handles authentication related API endpoints.
type AuthHandler struct {
	userService core.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us core.UserService) *AuthHandler {
	return &AuthHandler{userService: us}
}

// InitializeUserProfile handles POST /users/initialize. Clients call it
// after a Firebase authentication event to ensure a backend profile exists.
// The auth middleware has already validated the ID token and put the user's
// claims into the Gin context.
func (h *AuthHandler) InitializeUserProfile(c *gin.Context) {
	userID, displayName, ok := actingUser(c)
	if !ok {
		return
	}

	rawEmail, _ := c.Get("userEmail")
	email, _ := rawEmail.(string)
	rawPhotoURL, _ := c.Get("userPhotoURL")
	photoURL, _ := rawPhotoURL.(string)

	user, created, err := h.userService.GetOrCreate(c.Request.Context(), userID, email, displayName, photoURL)
	if err != nil {
		log.Printf("InitializeUserProfile Error: userService.GetOrCreate failed for userID %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to initialize user profile", Details: err.Error()})
		return
	}

	if created {
		c.JSON(http.StatusCreated, user)
	} else {
		c.JSON(http.StatusOK, user)
	}
}
