package handler

import (
	"chantier-go/internal/dto"
	"chantier-go/internal/middleware"
	"chantier-go/internal/models"
	"chantier-go/internal/storage"
	"chantier-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// ChantierHandler endpoints des chantiers
type ChantierHandler struct {
	store storage.Store
}

// NewChantierHandler crée le handler chantiers
func NewChantierHandler(store storage.Store) *ChantierHandler {
	return &ChantierHandler{store: store}
}

// List GET /api/chantiers
func (h *ChantierHandler) List(c *gin.Context) {
	chantiers, err := h.store.ListChantiers()
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, chantiers)
}

// Create POST /api/chantiers
func (h *ChantierHandler) Create(c *gin.Context) {
	var req dto.CreateChantierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "requête invalide: "+err.Error())
		return
	}

	dateDebut, err := parseDatePtr(req.DateDebut)
	if err != nil {
		utils.BadRequest(c, "date_debut invalide")
		return
	}
	dateFin, err := parseDatePtr(req.DateFin)
	if err != nil {
		utils.BadRequest(c, "date_fin invalide")
		return
	}

	acteurID, _ := middleware.GetUserID(c)
	chantier, err := h.store.CreateChantier(&models.Chantier{
		Nom:           req.Nom,
		Adresse:       req.Adresse,
		Statut:        req.Statut,
		Description:   req.Description,
		DateDebut:     dateDebut,
		DateFin:       dateFin,
		ResponsableID: req.ResponsableID,
	}, acteurID)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.CreatedResponse(c, chantier)
}

// Get GET /api/chantiers/:id
func (h *ChantierHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	chantier, err := h.store.GetChantier(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, chantier)
}

// Update PUT /api/chantiers/:id
func (h *ChantierHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateChantierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "requête invalide: "+err.Error())
		return
	}

	patch := storage.ChantierPatch{
		Nom:           req.Nom,
		Adresse:       req.Adresse,
		Statut:        req.Statut,
		Description:   req.Description,
		ResponsableID: req.ResponsableID,
	}
	if req.DateDebut != nil {
		t, err := parseDate(*req.DateDebut)
		if err != nil {
			utils.BadRequest(c, "date_debut invalide")
			return
		}
		patch.DateDebut = &t
	}
	if req.DateFin != nil {
		t, err := parseDate(*req.DateFin)
		if err != nil {
			utils.BadRequest(c, "date_fin invalide")
			return
		}
		patch.DateFin = &t
	}

	chantier, err := h.store.UpdateChantier(id, patch)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, chantier)
}

// Delete DELETE /api/chantiers/:id
func (h *ChantierHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	found, err := h.store.DeleteChantier(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	if !found {
		utils.NotFound(c, "chantier introuvable")
		return
	}
	utils.SuccessWithMessage(c, "chantier supprimé", nil)
}

// Stats GET /api/chantiers/:id/stats
func (h *ChantierHandler) Stats(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	stats, err := h.store.GetChantierStats(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, stats)
}

// ListLots GET /api/chantiers/:id/lots
func (h *ChantierHandler) ListLots(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.store.GetChantier(id); err != nil {
		repondErreur(c, err)
		return
	}
	lots, err := h.store.ListLotsByChantier(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, lots)
}

// ListTaches GET /api/chantiers/:id/taches
func (h *ChantierHandler) ListTaches(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.store.GetChantier(id); err != nil {
		repondErreur(c, err)
		return
	}
	taches, err := h.store.ListTachesByChantier(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, taches)
}

// Activites GET /api/chantiers/:id/activites
func (h *ChantierHandler) Activites(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	activites, err := h.store.ListActivitesForTarget(models.TargetChantier, id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, activites)
}
