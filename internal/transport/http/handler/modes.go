package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"nexusbot/internal/config"
	"nexusbot/internal/transport/http/response"
)

type ModesHandler struct {
	modes map[string]config.Mode
}

// ModeView exposes the label and suggestion chips of an analysis mode. The
// instruction text stays server-side.
type ModeView struct {
	Label string   `json:"label"`
	Chips []string `json:"chips"`
}

func NewModesHandler(modes map[string]config.Mode) *ModesHandler {
	return &ModesHandler{modes: modes}
}

func (h *ModesHandler) List(c *gin.Context) {
	views := lo.MapValues(h.modes, func(m config.Mode, _ string) ModeView {
		return ModeView{Label: m.Label, Chips: m.Chips}
	})
	response.OK(c, gin.H{"modes": views})
}
