package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"nexusbot/internal/bootstrap"
	"nexusbot/internal/transport/http/response"
)

type HealthHandler struct {
	app *bootstrap.App
}

func NewHealthHandler(app *bootstrap.App) *HealthHandler {
	return &HealthHandler{app: app}
}

func (h *HealthHandler) Check(c *gin.Context) {
	response.OK(c, gin.H{
		"model":      h.app.Config.LLM.Model,
		"status":     "online",
		"uptime_sec": int(time.Since(h.app.StartedAt).Seconds()),
	})
}
