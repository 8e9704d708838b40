package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"chantier-go/internal/models"
	"chantier-go/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// harnais de test : routeur minimal sur magasin mémoire, utilisateur
// authentifié injecté directement dans le contexte
func newTestRouter(t *testing.T) (*gin.Engine, storage.Store, *models.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	user, err := store.CreateUser(&models.User{
		Nom: "Claire Morel", Role: models.RoleConducteur, Username: "cmorel",
	})
	require.NoError(t, err)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", user.ID)
		c.Set("username", user.Username)
		c.Set("role", user.Role)
	})

	chantierHandler := NewChantierHandler(store)
	tacheHandler := NewTacheHandler(store)
	documentHandler := NewDocumentHandler(store)
	ressourceHandler := NewRessourceHandler(store)
	userHandler := NewUserHandler(store)
	feedHandler := NewFeedHandler(store)
	dashboardHandler := NewDashboardHandler(store)

	r.POST("/api/chantiers", chantierHandler.Create)
	r.GET("/api/chantiers/:id", chantierHandler.Get)
	r.DELETE("/api/chantiers/:id", chantierHandler.Delete)
	r.POST("/api/taches", tacheHandler.Create)
	r.PUT("/api/taches/:id", tacheHandler.Update)
	r.POST("/api/pieces_jointes", documentHandler.Create)
	r.POST("/api/pieces_jointes/:id/revisions", documentHandler.CreateRevision)
	r.GET("/api/planning", ressourceHandler.Planning)
	r.DELETE("/api/admin/users/:id", userHandler.Delete)
	r.GET("/api/notifications", feedHandler.ListNotifications)
	r.GET("/api/dashboard/stats", dashboardHandler.Stats)

	return r, store, user
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateChantier(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/chantiers", gin.H{
		"nom":        "Résidence Les Ormes",
		"adresse":    "12 rue des Peupliers",
		"date_debut": "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data models.Chantier `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Résidence Les Ormes", resp.Data.Nom)
	require.NotZero(t, resp.Data.ID)
}

func TestCreateChantierNomManquant(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/chantiers", gin.H{"adresse": "sans nom"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetChantierIntrouvable(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/chantiers/99", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteChantierIntrouvable(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/api/chantiers/99", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateTacheLotIncoherent(t *testing.T) {
	r, store, user := newTestRouter(t)

	c1, err := store.CreateChantier(&models.Chantier{Nom: "C1"}, user.ID)
	require.NoError(t, err)
	c2, err := store.CreateChantier(&models.Chantier{Nom: "C2"}, user.ID)
	require.NoError(t, err)
	lot, err := store.CreateLot(&models.Lot{ChantierID: c1.ID, Nom: "Lot"}, user.ID)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/taches", gin.H{
		"chantier_id": c2.ID,
		"lot_id":      lot.ID,
		"nom":         "T",
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateTacheStatut(t *testing.T) {
	r, store, user := newTestRouter(t)

	c, err := store.CreateChantier(&models.Chantier{Nom: "C"}, user.ID)
	require.NoError(t, err)
	tache, err := store.CreateTache(&models.Tache{ChantierID: c.ID, Nom: "T"}, user.ID)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPut, "/api/taches/"+itoa(tache.ID), gin.H{
		"statut": "en_cours",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.Tache `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, models.TacheEnCours, resp.Data.Statut)
	require.NotNil(t, resp.Data.UpdatedBy)
	require.Equal(t, user.ID, *resp.Data.UpdatedBy)
}

func TestUpdateTacheStatutInvalide(t *testing.T) {
	r, store, user := newTestRouter(t)

	c, err := store.CreateChantier(&models.Chantier{Nom: "C"}, user.ID)
	require.NoError(t, err)
	tache, err := store.CreateTache(&models.Tache{ChantierID: c.ID, Nom: "T"}, user.ID)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPut, "/api/taches/"+itoa(tache.ID), gin.H{
		"statut": "inexistant",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRevisionForceStatut(t *testing.T) {
	r, store, user := newTestRouter(t)

	c, err := store.CreateChantier(&models.Chantier{Nom: "C"}, user.ID)
	require.NoError(t, err)
	tache, err := store.CreateTache(&models.Tache{ChantierID: c.ID, Nom: "T", Statut: models.TacheEnCours}, user.ID)
	require.NoError(t, err)
	pj, err := store.CreatePieceJointe(&models.PieceJointe{TacheID: tache.ID, Nom: "plan.pdf"}, user.ID)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/pieces_jointes/"+itoa(pj.ID)+"/revisions", gin.H{
		"indice": "B",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	maj, err := store.GetTache(tache.ID)
	require.NoError(t, err)
	require.Equal(t, models.TacheEnRevision, maj.Statut)
}

func TestDeleteUserDirecteurRefuse(t *testing.T) {
	r, store, _ := newTestRouter(t)

	directeur, err := store.CreateUser(&models.User{
		Nom: "Dir", Role: models.RoleDirecteur, Username: "dir",
	})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodDelete, "/api/admin/users/"+itoa(directeur.ID), nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestPlanningParametresManquants(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/planning", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/planning?debut=2024-05-01&fin=2024-04-01", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotificationsApresDocument(t *testing.T) {
	r, store, user := newTestRouter(t)

	autre, err := store.CreateUser(&models.User{
		Nom: "Karim Benali", Role: models.RoleIntervenant, Username: "kbenali",
	})
	require.NoError(t, err)

	c, err := store.CreateChantier(&models.Chantier{Nom: "C"}, user.ID)
	require.NoError(t, err)
	tache, err := store.CreateTache(&models.Tache{ChantierID: c.ID, Nom: "T"}, user.ID)
	require.NoError(t, err)
	_, err = store.AddTacheIntervenant(tache.ID, autre.ID, user.ID)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/pieces_jointes", gin.H{
		"tache_id": tache.ID,
		"nom":      "plan.pdf",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	boite, err := store.GetNotificationsForUser(autre.ID)
	require.NoError(t, err)
	require.Len(t, boite, 1)
}

func TestDashboardStats(t *testing.T) {
	r, store, user := newTestRouter(t)

	_, err := store.CreateChantier(&models.Chantier{Nom: "C", Statut: models.ChantierActif}, user.ID)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data storage.DashboardStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Data.ChantiersActifs)
	require.Equal(t, 12, resp.Data.EvolutionChantiers)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
