package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snapwork/snapwork/pkg/utils"
)

// ConfigHandler exposes the client-facing settings the frontend needs
// before its first query.
type ConfigHandler struct {
	pageSize        int
	defaultRadiusKm float64
}

func NewConfigHandler(pageSize int, defaultRadiusKm float64) *ConfigHandler {
	return &ConfigHandler{
		pageSize:        pageSize,
		defaultRadiusKm: defaultRadiusKm,
	}
}

func (h *ConfigHandler) RegisterRoutes(r chi.Router) {
	r.Get("/config", h.GetConfig)
}

// GET /api/config
func (h *ConfigHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, http.StatusOK, map[string]interface{}{
		"pageSize":        h.pageSize,
		"defaultRadiusKm": h.defaultRadiusKm,
	})
}
