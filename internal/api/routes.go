package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clausecraft-backend-go/internal/config"
	"clausecraft-backend-go/internal/core"
	"clausecraft-backend-go/internal/db"
	"clausecraft-backend-go/internal/middleware"
)

// SetupRoutes configures all the application routes with their handlers and
// middleware. Global middleware (logging, recovery, CORS) is expected to be
// applied to the router before this is called, typically in main.go.
func SetupRoutes(
	router *gin.Engine,
	appConfig *config.Config,
	logger *zap.Logger,
	userService core.UserService,
	documentService core.DocumentService,
	assistService core.AssistService,
	exportService core.ExportService,
	sessionManager *core.SessionManager,
) {
	// The Firebase Auth client must be available after db.InitFirestore().
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firebaseAuthClient == nil {
		logger.Fatal("CRITICAL_SETUP_ERROR: Firebase Auth client is not initialized. AuthMiddleware cannot be created, and routes will not be set up.")
		panic("Firebase Auth client is nil during route setup. Ensure db.InitFirestore() was called and succeeded.")
	}
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient)

	authHandler := NewAuthHandler(userService)
	userHandler := NewUserHandler(userService)
	documentHandler := NewDocumentHandler(documentService)
	annotationHandler := NewAnnotationHandler(documentService)
	revisionHandler := NewRevisionHandler(documentService)
	assistHandler := NewAssistHandler(assistService, exportService)
	sessionHandler := NewSessionHandler(documentService, sessionManager)

	apiV1 := router.Group("/api/v1")
	{
		// --- User and Authentication Endpoints ---
		userAuthGroup := apiV1.Group("/users")
		{
			// Called after client-side Firebase login/signup to ensure a backend profile exists.
			userAuthGroup.POST("/initialize", authMW.VerifyToken(), authHandler.InitializeUserProfile)
			userAuthGroup.GET("/me", authMW.VerifyToken(), userHandler.GetCurrentUserProfile)
		}

		// --- Document Endpoints ---
		// All document operations require authentication; per-document
		// permissions are resolved inside the services.
		documentsRouteGroup := apiV1.Group("/documents", authMW.VerifyToken())
		{
			documentsRouteGroup.POST("", documentHandler.CreateDocument)
			documentsRouteGroup.GET("", documentHandler.ListDocuments)
			documentsRouteGroup.GET("/:documentId", documentHandler.GetDocument)
			documentsRouteGroup.PUT("/:documentId/content", documentHandler.SaveContent)
			documentsRouteGroup.DELETE("/:documentId", documentHandler.DeleteDocument)

			// Sharing (owner only, enforced in the service)
			sharingRouteGroup := documentsRouteGroup.Group("/:documentId/share")
			{
				sharingRouteGroup.POST("", documentHandler.ShareDocument)
				sharingRouteGroup.DELETE("/:principalId", documentHandler.RemoveShare)
			}

			// Highlights and the annotated view
			documentsRouteGroup.POST("/:documentId/highlights", annotationHandler.CreateHighlight)
			documentsRouteGroup.DELETE("/:documentId/highlights/:highlightId", annotationHandler.DeleteHighlight)
			documentsRouteGroup.GET("/:documentId/annotated", annotationHandler.GetAnnotatedContent)

			// Change views and the revision log
			documentsRouteGroup.GET("/:documentId/changes", revisionHandler.GetContentChanges)
			documentsRouteGroup.GET("/:documentId/revisions", revisionHandler.ListRevisions)
			documentsRouteGroup.GET("/:documentId/revisions/:revisionId/changes", revisionHandler.GetRevisionChanges)

			// AI assist and export
			documentsRouteGroup.POST("/:documentId/assist", assistHandler.ExplainSelection)
			documentsRouteGroup.POST("/:documentId/export", assistHandler.ExportDocument)

			// Editing sessions (local undo/redo buffer)
			documentsRouteGroup.POST("/:documentId/sessions", sessionHandler.OpenSession)
		}

		// --- Editing Session Endpoints ---
		sessionsRouteGroup := apiV1.Group("/sessions", authMW.VerifyToken())
		{
			sessionsRouteGroup.POST("/:sessionId/push", sessionHandler.PushSnapshot)
			sessionsRouteGroup.POST("/:sessionId/undo", sessionHandler.Undo)
			sessionsRouteGroup.POST("/:sessionId/redo", sessionHandler.Redo)
			sessionsRouteGroup.DELETE("/:sessionId", sessionHandler.CloseSession)
		}
	}

	// --- General Health Check Endpoint ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Clausecraft backend is healthy."})
	})

	logger.Info("API routes configured successfully under /api/v1 and /health.")
}
