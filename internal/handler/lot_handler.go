package handler

import (
	"chantier-go/internal/dto"
	"chantier-go/internal/middleware"
	"chantier-go/internal/models"
	"chantier-go/internal/storage"
	"chantier-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// LotHandler endpoints des lots de travaux
type LotHandler struct {
	store storage.Store
}

// NewLotHandler crée le handler lots
func NewLotHandler(store storage.Store) *LotHandler {
	return &LotHandler{store: store}
}

// Create POST /api/lots
func (h *LotHandler) Create(c *gin.Context) {
	var req dto.CreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "requête invalide: "+err.Error())
		return
	}

	acteurID, _ := middleware.GetUserID(c)
	lot, err := h.store.CreateLot(&models.Lot{
		ChantierID: req.ChantierID,
		Nom:        req.Nom,
		Numero:     req.Numero,
	}, acteurID)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.CreatedResponse(c, lot)
}

// Get GET /api/lots/:id
func (h *LotHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	lot, err := h.store.GetLot(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, lot)
}

// Update PUT /api/lots/:id
func (h *LotHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "requête invalide: "+err.Error())
		return
	}

	lot, err := h.store.UpdateLot(id, storage.LotPatch{
		Nom:    req.Nom,
		Numero: req.Numero,
	})
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, lot)
}

// Delete DELETE /api/lots/:id
func (h *LotHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	found, err := h.store.DeleteLot(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	if !found {
		utils.NotFound(c, "lot introuvable")
		return
	}
	utils.SuccessWithMessage(c, "lot supprimé", nil)
}

// Stats GET /api/lots/:id/stats
func (h *LotHandler) Stats(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	stats, err := h.store.GetLotStats(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, stats)
}

// ListTaches GET /api/lots/:id/taches
func (h *LotHandler) ListTaches(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.store.GetLot(id); err != nil {
		repondErreur(c, err)
		return
	}
	taches, err := h.store.ListTachesByLot(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, taches)
}

// ListPilotes GET /api/lots/:id/pilotes
func (h *LotHandler) ListPilotes(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.store.GetLot(id); err != nil {
		repondErreur(c, err)
		return
	}
	pilotes, err := h.store.ListLotPilotes(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, pilotes)
}

// AddPilote POST /api/lots/:id/pilotes
func (h *LotHandler) AddPilote(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AddPiloteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "requête invalide: "+err.Error())
		return
	}

	acteurID, _ := middleware.GetUserID(c)
	pilote, err := h.store.AddLotPilote(id, req.UserID, req.Role, acteurID)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.CreatedResponse(c, pilote)
}

// RemovePilote DELETE /api/lots/:id/pilotes/:user_id
func (h *LotHandler) RemovePilote(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	found, err := h.store.RemoveLotPilote(id, userID)
	if err != nil {
		repondErreur(c, err)
		return
	}
	if !found {
		utils.NotFound(c, "pilote introuvable")
		return
	}
	utils.SuccessWithMessage(c, "pilote retiré", nil)
}
