package handler

import (
	"strconv"

	"chantier-go/internal/middleware"
	"chantier-go/internal/storage"
	"chantier-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// FeedHandler journal d'activité et notifications
type FeedHandler struct {
	store storage.Store
}

// NewFeedHandler crée le handler du fil d'activité
func NewFeedHandler(store storage.Store) *FeedHandler {
	return &FeedHandler{store: store}
}

// ListActivites GET /api/activites?limit=N
func (h *FeedHandler) ListActivites(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.BadRequest(c, "limit invalide")
			return
		}
		limit = n
	}

	activites, err := h.store.ListActivites(limit)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, activites)
}

// ListNotifications GET /api/notifications
func (h *FeedHandler) ListNotifications(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.Unauthorized(c, "authentification requise")
		return
	}

	notifications, err := h.store.GetNotificationsForUser(userID)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, notifications)
}

// MarkRead PUT /api/notifications/:id/lu
func (h *FeedHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	notification, err := h.store.MarkNotificationRead(id)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, notification)
}

// MarkAllRead PUT /api/notifications/lu
func (h *FeedHandler) MarkAllRead(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.Unauthorized(c, "authentification requise")
		return
	}

	count, err := h.store.MarkAllNotificationsRead(userID)
	if err != nil {
		repondErreur(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"marquees": count})
}
