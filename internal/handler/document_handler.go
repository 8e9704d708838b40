package handler

import (
	"chantier-go/internal/dto"
	"chantier-go/internal/middleware"
	"chantier-go/internal/models"
	"chantier-go/internal/storage"
	"chantier-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// DocumentHandler endpoints des pièces jointes et de leurs révisions
type DocumentHandler struct {
	store storage.Store
}

// NewDocumentHandler crée le handler documents
func NewDocumentHandler(store storage.Store) *DocumentHandler {
	return &DocumentHandler{store: store}
}

// Create POST /api/pieces_jointes
func (h *DocumentHandler) Create(c *gin.Context) {
	var req dto.CreatePieceJointeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "requête invalide: "+err.Error())
		return
	}

	acteurID, _ := middleware.GetUserID(c)
	piece, err := h.store.CreatePieceJointe(&models.PieceJointe{
		TacheID: req.TacheID,
		Nom:     req.Nom,
		Chemin:  req.Chemin,
		Type:    req.Type,
	}, acteurID)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.CreatedResponse(c, piece)
}

// Get GET /api/pieces_jointes/:id
func (h *DocumentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	piece, err := h.store.GetPieceJointe(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, piece)
}

// Delete DELETE /api/pieces_jointes/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	found, err := h.store.DeletePieceJointe(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	if !found {
		utils.NotFound(c, "pièce jointe introuvable")
		return
	}
	utils.SuccessWithMessage(c, "pièce jointe supprimée", nil)
}

// ListRevisions GET /api/pieces_jointes/:id/revisions
func (h *DocumentHandler) ListRevisions(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.store.GetPieceJointe(id); err != nil {
		repondErreur(c, err)
		return
	}
	revisions, err := h.store.ListRevisionsByPieceJointe(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, revisions)
}

// CreateRevision POST /api/pieces_jointes/:id/revisions
func (h *DocumentHandler) CreateRevision(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateRevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "requête invalide: "+err.Error())
		return
	}

	acteurID, _ := middleware.GetUserID(c)
	revision := &models.Revision{
		PieceJointeID: id,
		Indice:        req.Indice,
		Commentaire:   req.Commentaire,
	}
	if acteurID != 0 {
		revision.AuteurID = &acteurID
	}

	created, err := h.store.CreateRevision(revision, acteurID)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.CreatedResponse(c, created)
}
