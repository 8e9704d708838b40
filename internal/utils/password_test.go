package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashEtCheckPassword(t *testing.T) {
	hash, err := HashPassword("chantier2024")
	require.NoError(t, err)
	require.NotEqual(t, "chantier2024", hash)

	require.NoError(t, CheckPassword("chantier2024", hash))
	require.Error(t, CheckPassword("mauvais", hash))
}
