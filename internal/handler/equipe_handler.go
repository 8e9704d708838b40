package handler

import (
	"chantier-go/internal/dto"
	"chantier-go/internal/models"
	"chantier-go/internal/storage"
	"chantier-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// EquipeHandler endpoints des équipes
type EquipeHandler struct {
	store storage.Store
}

// NewEquipeHandler crée le handler équipes
func NewEquipeHandler(store storage.Store) *EquipeHandler {
	return &EquipeHandler{store: store}
}

// List GET /api/equipes
func (h *EquipeHandler) List(c *gin.Context) {
	equipes, err := h.store.ListEquipes()
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, equipes)
}

// Create POST /api/equipes
func (h *EquipeHandler) Create(c *gin.Context) {
	var req dto.CreateEquipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "requête invalide: "+err.Error())
		return
	}

	equipe, err := h.store.CreateEquipe(&models.Equipe{
		Nom:           req.Nom,
		ResponsableID: req.ResponsableID,
	})
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.CreatedResponse(c, equipe)
}

// Get GET /api/equipes/:id
func (h *EquipeHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	equipe, err := h.store.GetEquipe(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, equipe)
}

// Update PUT /api/equipes/:id
func (h *EquipeHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateEquipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "requête invalide: "+err.Error())
		return
	}

	equipe, err := h.store.UpdateEquipe(id, storage.EquipePatch{
		Nom:           req.Nom,
		ResponsableID: req.ResponsableID,
	})
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, equipe)
}

// Delete DELETE /api/equipes/:id
func (h *EquipeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	found, err := h.store.DeleteEquipe(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	if !found {
		utils.NotFound(c, "équipe introuvable")
		return
	}
	utils.SuccessWithMessage(c, "équipe supprimée", nil)
}

// ListMembres GET /api/equipes/:id/membres
func (h *EquipeHandler) ListMembres(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.store.GetEquipe(id); err != nil {
		repondErreur(c, err)
		return
	}
	membres, err := h.store.ListEquipeMembres(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, membres)
}

// AddMembre POST /api/equipes/:id/membres
func (h *EquipeHandler) AddMembre(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AddMembreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "requête invalide: "+err.Error())
		return
	}

	membre, err := h.store.AddEquipeMembre(id, req.UserID)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.CreatedResponse(c, membre)
}

// RemoveMembre DELETE /api/equipes/:id/membres/:user_id
func (h *EquipeHandler) RemoveMembre(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	found, err := h.store.RemoveEquipeMembre(id, userID)
	if err != nil {
		repondErreur(c, err)
		return
	}
	if !found {
		utils.NotFound(c, "membre introuvable")
		return
	}
	utils.SuccessWithMessage(c, "membre retiré", nil)
}
