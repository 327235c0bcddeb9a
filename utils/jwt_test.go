package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken(42, "segredo", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(tok, "segredo")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}

func TestTokenWrongSecret(t *testing.T) {
	tok, err := GenerateToken(42, "segredo", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(tok, "outro")
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	tok, err := GenerateToken(42, "segredo", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(tok, "segredo")
	assert.Error(t, err)
}
