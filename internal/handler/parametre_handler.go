package handler

import (
	"chantier-go/internal/dto"
	"chantier-go/internal/storage"
	"chantier-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// ParametreHandler endpoints des paramètres d'application
type ParametreHandler struct {
	store storage.Store
}

// NewParametreHandler crée le handler paramètres
func NewParametreHandler(store storage.Store) *ParametreHandler {
	return &ParametreHandler{store: store}
}

// List GET /api/parametres
func (h *ParametreHandler) List(c *gin.Context) {
	parametres, err := h.store.ListParametres()
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, parametres)
}

// Get GET /api/parametres/:cle
func (h *ParametreHandler) Get(c *gin.Context) {
	cle := c.Param("cle")
	parametre, err := h.store.GetParametre(cle)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, parametre)
}

// Set PUT /api/admin/parametres
func (h *ParametreHandler) Set(c *gin.Context) {
	var req dto.SetParametreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "requête invalide: "+err.Error())
		return
	}

	parametre, err := h.store.SetParametre(req.Cle, req.Valeur)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, parametre)
}

// Delete DELETE /api/admin/parametres/:cle
func (h *ParametreHandler) Delete(c *gin.Context) {
	cle := c.Param("cle")
	found, err := h.store.DeleteParametre(cle)
	if err != nil {
		repondErreur(c, err)
		return
	}
	if !found {
		utils.NotFound(c, "paramètre introuvable")
		return
	}
	utils.SuccessWithMessage(c, "paramètre supprimé", nil)
}
