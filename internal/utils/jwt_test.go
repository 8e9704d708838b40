package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateEtValidateToken(t *testing.T) {
	manager := NewJWTManager("secret-test", "HS256", time.Hour)

	token, err := manager.GenerateToken(7, "cmorel", "conducteur_travaux")
	require.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, uint(7), claims.UserID)
	require.Equal(t, "cmorel", claims.Username)
	require.Equal(t, "conducteur_travaux", claims.Role)
}

func TestValidateTokenExpire(t *testing.T) {
	manager := NewJWTManager("secret-test", "HS256", -time.Minute)

	token, err := manager.GenerateToken(1, "kbenali", "chef_equipe")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateTokenMauvaiseCle(t *testing.T) {
	manager := NewJWTManager("secret-test", "HS256", time.Hour)
	autre := NewJWTManager("autre-secret", "HS256", time.Hour)

	token, err := manager.GenerateToken(1, "cmorel", "directeur")
	require.NoError(t, err)

	_, err = autre.ValidateToken(token)
	require.Error(t, err)
}
