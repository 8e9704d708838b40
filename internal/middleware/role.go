package middleware

import (
	"chantier-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequireRole restreint un groupe de routes aux rôles donnés
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if ok {
			for _, r := range roles {
				if role == r {
					c.Next()
					return
				}
			}
		}
		utils.Forbidden(c, "droits insuffisants")
		c.Abort()
	}
}
