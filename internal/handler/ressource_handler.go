package handler

import (
	"chantier-go/internal/dto"
	"chantier-go/internal/models"
	"chantier-go/internal/storage"
	"chantier-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// RessourceHandler endpoints des ressources, affectations et disponibilités
type RessourceHandler struct {
	store storage.Store
}

// NewRessourceHandler crée le handler ressources
func NewRessourceHandler(store storage.Store) *RessourceHandler {
	return &RessourceHandler{store: store}
}

// List GET /api/ressources
func (h *RessourceHandler) List(c *gin.Context) {
	ressources, err := h.store.ListRessources()
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, ressources)
}

// Create POST /api/ressources
func (h *RessourceHandler) Create(c *gin.Context) {
	var req dto.CreateRessourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "requête invalide: "+err.Error())
		return
	}

	ressource, err := h.store.CreateRessource(&models.Ressource{
		Nom:            req.Nom,
		Type:           req.Type,
		Unite:          req.Unite,
		CoutJournalier: req.CoutJournalier,
	})
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.CreatedResponse(c, ressource)
}

// Get GET /api/ressources/:id
func (h *RessourceHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ressource, err := h.store.GetRessource(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, ressource)
}

// Update PUT /api/ressources/:id
func (h *RessourceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateRessourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "requête invalide: "+err.Error())
		return
	}

	ressource, err := h.store.UpdateRessource(id, storage.RessourcePatch{
		Nom:            req.Nom,
		Type:           req.Type,
		Unite:          req.Unite,
		CoutJournalier: req.CoutJournalier,
	})
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, ressource)
}

// Delete DELETE /api/ressources/:id
func (h *RessourceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	found, err := h.store.DeleteRessource(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	if !found {
		utils.NotFound(c, "ressource introuvable")
		return
	}
	utils.SuccessWithMessage(c, "ressource supprimée", nil)
}

// ListAffectations GET /api/ressources/:id/affectations
func (h *RessourceHandler) ListAffectations(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.store.GetRessource(id); err != nil {
		repondErreur(c, err)
		return
	}
	affectations, err := h.store.ListAffectationsByRessource(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, affectations)
}

// CreateAffectation POST /api/affectations
func (h *RessourceHandler) CreateAffectation(c *gin.Context) {
	var req dto.CreateAffectationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "requête invalide: "+err.Error())
		return
	}

	debut, err := parseDate(req.DateDebut)
	if err != nil {
		utils.BadRequest(c, "date_debut invalide")
		return
	}
	fin, err := parseDate(req.DateFin)
	if err != nil {
		utils.BadRequest(c, "date_fin invalide")
		return
	}
	if fin.Before(debut) {
		utils.BadRequest(c, "date_fin antérieure à date_debut")
		return
	}

	quantite := req.Quantite
	if quantite == 0 {
		quantite = 1
	}

	affectation, err := h.store.CreateAffectation(&models.RessourceAffectation{
		RessourceID: req.RessourceID,
		TacheID:     req.TacheID,
		DateDebut:   debut,
		DateFin:     fin,
		Quantite:    quantite,
	})
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.CreatedResponse(c, affectation)
}

// DeleteAffectation DELETE /api/affectations/:id
func (h *RessourceHandler) DeleteAffectation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	found, err := h.store.DeleteAffectation(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	if !found {
		utils.NotFound(c, "affectation introuvable")
		return
	}
	utils.SuccessWithMessage(c, "affectation supprimée", nil)
}

// ListDisponibilites GET /api/ressources/:id/disponibilites
func (h *RessourceHandler) ListDisponibilites(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.store.GetRessource(id); err != nil {
		repondErreur(c, err)
		return
	}
	disponibilites, err := h.store.ListDisponibilitesByRessource(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, disponibilites)
}

// CreateDisponibilite POST /api/disponibilites
func (h *RessourceHandler) CreateDisponibilite(c *gin.Context) {
	var req dto.CreateDisponibiliteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "requête invalide: "+err.Error())
		return
	}

	debut, err := parseDate(req.DateDebut)
	if err != nil {
		utils.BadRequest(c, "date_debut invalide")
		return
	}
	fin, err := parseDate(req.DateFin)
	if err != nil {
		utils.BadRequest(c, "date_fin invalide")
		return
	}
	if fin.Before(debut) {
		utils.BadRequest(c, "date_fin antérieure à date_debut")
		return
	}

	disponibilite, err := h.store.CreateDisponibilite(&models.RessourceDisponibilite{
		RessourceID: req.RessourceID,
		DateDebut:   debut,
		DateFin:     fin,
		Statut:      req.Statut,
	})
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.CreatedResponse(c, disponibilite)
}

// DeleteDisponibilite DELETE /api/disponibilites/:id
func (h *RessourceHandler) DeleteDisponibilite(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	found, err := h.store.DeleteDisponibilite(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	if !found {
		utils.NotFound(c, "disponibilité introuvable")
		return
	}
	utils.SuccessWithMessage(c, "disponibilité supprimée", nil)
}

// Planning GET /api/planning?debut=...&fin=...
func (h *RessourceHandler) Planning(c *gin.Context) {
	debutRaw := c.Query("debut")
	finRaw := c.Query("fin")
	if debutRaw == "" || finRaw == "" {
		utils.BadRequest(c, "les paramètres debut et fin sont obligatoires")
		return
	}

	debut, err := parseDate(debutRaw)
	if err != nil {
		utils.BadRequest(c, "debut invalide")
		return
	}
	fin, err := parseDate(finRaw)
	if err != nil {
		utils.BadRequest(c, "fin invalide")
		return
	}
	if fin.Before(debut) {
		utils.BadRequest(c, "fin antérieure à debut")
		return
	}

	planning, err := h.store.GetPlanning(debut, fin)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, planning)
}
