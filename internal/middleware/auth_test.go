package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chantier-go/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(manager *utils.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protege", AuthMiddleware(manager), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		role, _ := GetRole(c)
		c.JSON(200, gin.H{"user_id": userID, "role": role})
	})
	r.GET("/direction", AuthMiddleware(manager), RequireRole("directeur"), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	manager := utils.NewJWTManager("secret-test", "HS256", time.Hour)
	r := newAuthRouter(manager)

	// sans en-tête
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protege", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// format invalide
	req := httptest.NewRequest(http.MethodGet, "/protege", nil)
	req.Header.Set("Authorization", "Basic abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// token valide
	token, err := manager.GenerateToken(3, "cmorel", "conducteur_travaux")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/protege", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole(t *testing.T) {
	manager := utils.NewJWTManager("secret-test", "HS256", time.Hour)
	r := newAuthRouter(manager)

	token, err := manager.GenerateToken(3, "cmorel", "conducteur_travaux")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/direction", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)

	token, err = manager.GenerateToken(1, "dir", "directeur")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/direction", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
