package handler

import (
	"chantier-go/internal/dto"
	"chantier-go/internal/models"
	"chantier-go/internal/storage"
	"chantier-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler gestion des utilisateurs, réservée au directeur
type UserHandler struct {
	store storage.Store
}

// NewUserHandler crée le handler utilisateurs
func NewUserHandler(store storage.Store) *UserHandler {
	return &UserHandler{store: store}
}

// List GET /api/admin/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.store.ListUsers()
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, users)
}

// Create POST /api/admin/users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "requête invalide: "+err.Error())
		return
	}
	if err := utils.GetValidator().Var(req.Username, "username"); err != nil {
		utils.BadRequest(c, "username: lettres, chiffres et tiret bas, longueur 3 à 50")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.InternalError(c, "hachage du mot de passe")
		return
	}

	user, err := h.store.CreateUser(&models.User{
		Nom:          req.Nom,
		Role:         req.Role,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
	})
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.CreatedResponse(c, user)
}

// Get GET /api/admin/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := h.store.GetUser(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, user)
}

// Update PUT /api/admin/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "requête invalide: "+err.Error())
		return
	}

	patch := storage.UserPatch{
		Nom:   req.Nom,
		Role:  req.Role,
		Email: req.Email,
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			utils.InternalError(c, "hachage du mot de passe")
			return
		}
		patch.PasswordHash = &hash
	}

	user, err := h.store.UpdateUser(id, patch)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, user)
}

// Delete DELETE /api/admin/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	found, err := h.store.DeleteUser(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	if !found {
		utils.NotFound(c, "utilisateur introuvable")
		return
	}
	utils.SuccessWithMessage(c, "utilisateur supprimé", nil)
}
