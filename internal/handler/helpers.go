package handler

import (
	"fmt"
	"strconv"
	"time"

	"chantier-go/internal/storage"
	"chantier-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// parseID lit un identifiant numérique dans les paramètres de route
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.BadRequest(c, fmt.Sprintf("identifiant invalide: %s", raw))
		return 0, false
	}
	return uint(id), true
}

// parseDate accepte une date au format 2006-01-02 ou RFC3339
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// parseDatePtr variante optionnelle de parseDate, "" donne nil
func parseDatePtr(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := parseDate(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// repondErreur traduit les erreurs du magasin en statuts HTTP
func repondErreur(c *gin.Context, err error) {
	switch {
	case storage.IsNotFound(err):
		utils.NotFound(c, err.Error())
	case storage.IsForbidden(err):
		utils.Forbidden(c, err.Error())
	case storage.IsConflict(err):
		utils.Conflict(c, err.Error())
	default:
		utils.InternalError(c, err.Error())
	}
}
