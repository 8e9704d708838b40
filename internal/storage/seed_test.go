package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedIdempotent(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, Seed(s))

	chantiers, err := s.ListChantiers()
	require.NoError(t, err)
	require.Len(t, chantiers, 1)
	taches, err := s.ListTaches()
	require.NoError(t, err)
	require.Len(t, taches, 1)

	// deuxième appel : rien n'est dupliqué
	require.NoError(t, Seed(s))
	chantiers, err = s.ListChantiers()
	require.NoError(t, err)
	require.Len(t, chantiers, 1)
	users, err := s.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
}
