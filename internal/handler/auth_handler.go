package handler

import (
	"chantier-go/internal/dto"
	"chantier-go/internal/middleware"
	"chantier-go/internal/service"
	"chantier-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler endpoints d'authentification
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler crée le handler d'authentification
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "requête invalide: "+err.Error())
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		if service.IsTropDeTentatives(err) {
			utils.TooManyRequests(c, err.Error())
			return
		}
		utils.Unauthorized(c, err.Error())
		return
	}

	utils.SuccessResponse(c, resp)
}

// GetMe GET /api/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.Unauthorized(c, "authentification requise")
		return
	}

	info, err := h.authService.GetMe(userID)
	if err != nil {
		repondErreur(c, err)
		return
	}

	utils.SuccessResponse(c, info)
}

// Logout POST /api/logout. Les tokens sont sans état, la déconnexion
// est côté client.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.SuccessWithMessage(c, "déconnecté", nil)
}
