package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"verilearn.io/entities"
)

func TestAuthTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "test-signing-key")

	signed, err := GenerateAuthToken(ClaimsData{
		IDCard:    "S100",
		FirstName: "Ada",
		Role:      entities.StudentRoleProfessor,
	})
	require.NoError(t, err)

	token, err := DecodeAuthToken(*signed)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "S100", claims["idCard"])
	assert.Equal(t, "Ada", claims["firstName"])
	assert.Equal(t, string(entities.StudentRoleProfessor), claims["role"])
}

func TestDecodeRejectsWrongKey(t *testing.T) {
	t.Setenv("JWT_SIGNING_KEY", "key-one")
	signed, err := GenerateAuthToken(ClaimsData{IDCard: "S100", Role: entities.StudentRoleStudent})
	require.NoError(t, err)

	t.Setenv("JWT_SIGNING_KEY", "key-two")
	_, err = DecodeAuthToken(*signed)
	assert.Error(t, err)
}
