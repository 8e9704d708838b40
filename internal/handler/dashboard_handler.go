package handler

import (
	"chantier-go/internal/storage"
	"chantier-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler compteurs du tableau de bord
type DashboardHandler struct {
	store storage.Store
}

// NewDashboardHandler crée le handler du tableau de bord
func NewDashboardHandler(store storage.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// Stats GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.store.GetDashboardStats()
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, stats)
}
