package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"nexusbot/internal/ai"
	"nexusbot/internal/app"
	"nexusbot/internal/transport/http/middleware"
	"nexusbot/internal/transport/http/response"
)

type ChatHandler struct {
	chat *app.ChatService
}

type ChatRequest struct {
	APIKey string `json:"api_key"`
	Query  string `json:"query"`
	Mode   string `json:"mode"`
}

func NewChatHandler(chat *app.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

func (h *ChatHandler) Send(c *gin.Context) {
	var req ChatRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.chat.Send(c.Request.Context(), sessionIDFromContext(c), app.SendInput{
		APIKey: req.APIKey,
		Query:  req.Query,
		Mode:   req.Mode,
	})
	if err != nil {
		response.Error(c, http.StatusBadRequest, chatErrorMessage(err))
		return
	}

	response.OK(c, gin.H{
		"reply":          result.Reply,
		"mode":           result.Mode,
		"history_length": result.HistoryLength,
	})
}

func (h *ChatHandler) Clear(c *gin.Context) {
	h.chat.Clear(sessionIDFromContext(c))
	response.OK(c, gin.H{"message": "Conversation cleared"})
}

// chatErrorMessage maps chat pipeline errors to the messages shown in the UI.
func chatErrorMessage(err error) string {
	var apiErr *ai.OpenRouterError
	switch {
	case errors.Is(err, app.ErrMissingAPIKey):
		return "Missing API key"
	case errors.Is(err, app.ErrMissingQuery):
		return "Missing query"
	case errors.Is(err, ai.ErrAuthFailed):
		return "Invalid API key — check your OpenRouter key."
	case errors.Is(err, ai.ErrRateLimited):
		return "Rate limit reached. Wait a moment and retry."
	case errors.Is(err, ai.ErrInsufficientCredits):
		return "OpenRouter free quota exhausted. Add credits at openrouter.ai."
	case errors.Is(err, ai.ErrTimeout):
		return "Request timed out. The model may be busy — try again."
	case errors.Is(err, ai.ErrEmptyResponse):
		return "Empty response from model."
	case errors.Is(err, ai.ErrEmptyReply):
		return "Model returned an empty reply — please retry."
	case errors.As(err, &apiErr):
		// Error bodies that came with a 2xx status are shown verbatim.
		if apiErr.Status >= 300 {
			return fmt.Sprintf("API error %d: %s", apiErr.Status, apiErr.Message)
		}
		return apiErr.Message
	default:
		return err.Error()
	}
}

func sessionIDFromContext(c *gin.Context) string {
	idAny, exists := c.Get(middleware.ContextSessionIDKey)
	if !exists {
		return "default"
	}
	id, ok := idAny.(string)
	if !ok || id == "" {
		return "default"
	}
	return id
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if c.Request.ContentLength == 0 {
		response.Error(c, http.StatusBadRequest, "Empty request body")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return false
	}
	return true
}
