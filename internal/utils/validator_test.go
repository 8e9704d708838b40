package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	v := GetValidator()

	require.NoError(t, v.Var("cmorel_42", "username"))
	require.Error(t, v.Var("ab", "username"))
	require.Error(t, v.Var("claire morel", "username"))
	require.Error(t, v.Var("c.morel", "username"))
}

func TestValidateStruct(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
	}

	require.NoError(t, ValidateStruct(&form{Email: "c.morel@example.fr"}))

	err := ValidateStruct(&form{Email: "pas-un-email"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Email")
}
