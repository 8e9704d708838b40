package service

import (
	"context"
	"testing"
	"time"

	"chantier-go/internal/config"
	"chantier-go/internal/dto"
	"chantier-go/internal/models"
	"chantier-go/internal/storage"
	"chantier-go/internal/utils"

	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, storage.Store) {
	t.Helper()
	store := storage.NewMemoryStore()
	manager := utils.NewJWTManager("secret-test", "HS256", time.Hour)
	cfg := &config.Config{
		Directeur: config.DirecteurConfig{
			Nom:      "Directeur",
			Username: "directeur",
			Password: "motdepasse",
		},
	}
	return NewAuthService(store, manager, nil, cfg), store
}

func TestLogin(t *testing.T) {
	svc, store := newAuthService(t)

	hash, err := utils.HashPassword("chantier2024")
	require.NoError(t, err)
	_, err = store.CreateUser(&models.User{
		Nom: "Claire Morel", Role: models.RoleConducteur,
		Username: "cmorel", PasswordHash: hash,
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "cmorel", Password: "chantier2024",
	}, "127.0.0.1")
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "bearer", resp.TokenType)
	require.Equal(t, "cmorel", resp.User.Username)

	// mauvais mot de passe
	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Username: "cmorel", Password: "mauvais",
	}, "127.0.0.1")
	require.Error(t, err)

	// utilisateur inconnu
	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Username: "inconnu", Password: "x",
	}, "127.0.0.1")
	require.Error(t, err)
}

func TestInitDirecteur(t *testing.T) {
	svc, store := newAuthService(t)

	require.NoError(t, svc.InitDirecteur())

	users, err := store.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, models.RoleDirecteur, users[0].Role)
	require.NotEqual(t, "motdepasse", users[0].PasswordHash)

	// idempotent
	require.NoError(t, svc.InitDirecteur())
	users, err = store.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
}
