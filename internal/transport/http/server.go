package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	appsvc "nexusbot/internal/app"
	"nexusbot/internal/bootstrap"
	"nexusbot/internal/transport/http/handler"
	"nexusbot/internal/transport/http/middleware"
	"nexusbot/internal/transport/http/response"
	"nexusbot/internal/web"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(
		middleware.RequestLogger(slog.Default()),
		gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
			response.Error(c, http.StatusInternalServerError, fmt.Sprintf("Unexpected error: %v", recovered))
			c.Abort()
		}),
		middleware.Session(app.Config.Session.CookieName),
	)

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML())
	})
	router.StaticFS("/static", http.FS(web.StaticFS()))

	documentService := appsvc.NewDocumentService(app.Store, app.Config.Ingest)
	chatService := appsvc.NewChatService(app.Store, app.Conversations, app.Config)

	documentHandler := handler.NewDocumentHandler(documentService)
	chatHandler := handler.NewChatHandler(chatService)
	modesHandler := handler.NewModesHandler(app.Config.Modes)
	healthHandler := handler.NewHealthHandler(app)

	api := router.Group("/api")
	api.GET("/documents", documentHandler.List)
	api.GET("/modes", modesHandler.List)
	api.GET("/health", healthHandler.Check)
	api.POST("/upload", documentHandler.Upload)
	api.POST("/remove", documentHandler.Remove)
	api.POST("/ingest", documentHandler.Ingest)
	api.POST("/chat", chatHandler.Send)
	api.POST("/clear", chatHandler.Clear)

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Not found")
	})

	return router
}
