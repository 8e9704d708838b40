package handler

import (
	"chantier-go/internal/dto"
	"chantier-go/internal/middleware"
	"chantier-go/internal/models"
	"chantier-go/internal/storage"
	"chantier-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// TacheHandler endpoints des tâches
type TacheHandler struct {
	store storage.Store
}

// NewTacheHandler crée le handler tâches
func NewTacheHandler(store storage.Store) *TacheHandler {
	return &TacheHandler{store: store}
}

// List GET /api/taches
func (h *TacheHandler) List(c *gin.Context) {
	taches, err := h.store.ListTaches()
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, taches)
}

// Create POST /api/taches
func (h *TacheHandler) Create(c *gin.Context) {
	var req dto.CreateTacheRequest
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
	tache, err := h.store.CreateTache(&models.Tache{
		ChantierID:  req.ChantierID,
		LotID:       req.LotID,
		Nom:         req.Nom,
		Description: req.Description,
		Statut:      req.Statut,
		Progression: req.Progression,
		DateDebut:   dateDebut,
		DateFin:     dateFin,
	}, acteurID)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.CreatedResponse(c, tache)
}

// Get GET /api/taches/:id
func (h *TacheHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	tache, err := h.store.GetTache(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, tache)
}

// Update PUT /api/taches/:id
func (h *TacheHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTacheRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "requête invalide: "+err.Error())
		return
	}

	patch := storage.TachePatch{
		Nom:         req.Nom,
		Description: req.Description,
		Statut:      req.Statut,
		Progression: req.Progression,
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
	if acteurID, ok := middleware.GetUserID(c); ok {
		patch.UpdatedBy = &acteurID
	}

	tache, err := h.store.UpdateTache(id, patch)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, tache)
}

// Delete DELETE /api/taches/:id
func (h *TacheHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	found, err := h.store.DeleteTache(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	if !found {
		utils.NotFound(c, "tâche introuvable")
		return
	}
	utils.SuccessWithMessage(c, "tâche supprimée", nil)
}

// ListIntervenants GET /api/taches/:id/intervenants
func (h *TacheHandler) ListIntervenants(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.store.GetTache(id); err != nil {
		repondErreur(c, err)
		return
	}
	intervenants, err := h.store.ListTacheIntervenants(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, intervenants)
}

// AddIntervenant POST /api/taches/:id/intervenants
func (h *TacheHandler) AddIntervenant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AddIntervenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "requête invalide: "+err.Error())
		return
	}

	acteurID, _ := middleware.GetUserID(c)
	intervenant, err := h.store.AddTacheIntervenant(id, req.UserID, acteurID)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.CreatedResponse(c, intervenant)
}

// RemoveIntervenant DELETE /api/taches/:id/intervenants/:user_id
func (h *TacheHandler) RemoveIntervenant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	found, err := h.store.RemoveTacheIntervenant(id, userID)
	if err != nil {
		repondErreur(c, err)
		return
	}
	if !found {
		utils.NotFound(c, "intervenant introuvable")
		return
	}
	utils.SuccessWithMessage(c, "intervenant retiré", nil)
}

// ListPiecesJointes GET /api/taches/:id/pieces_jointes
func (h *TacheHandler) ListPiecesJointes(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.store.GetTache(id); err != nil {
		repondErreur(c, err)
		return
	}
	pieces, err := h.store.ListPiecesJointesByTache(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, pieces)
}

// Activites GET /api/taches/:id/activites
func (h *TacheHandler) Activites(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	activites, err := h.store.ListActivitesForTarget(models.TargetTache, id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, activites)
}
