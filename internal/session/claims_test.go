package session_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atulub35/outsider-client-go/internal/session"
)

func TestDecodeClaims(t *testing.T) {
	user := session.User{ID: "42", Name: "Some Name", Email: "some@example.com"}
	token := makeToken(t, user, time.Now().Add(time.Hour))

	claims, err := session.DecodeClaims(token)
	require.NoError(t, err)

	assert.Equal(t, user, claims.User())
	assert.False(t, claims.Expired(time.Now()))
	assert.True(t, claims.Expired(time.Now().Add(2*time.Hour)))
}

func TestDecodeClaims_Malformed(t *testing.T) {
	_, err := session.DecodeClaims("definitely-not-a-jwt")
	require.Error(t, err)
	assert.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestClaims_Expired_WithoutExpiry(t *testing.T) {
	claims := session.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "42"},
	}

	assert.True(t, claims.Expired(time.Now()))
}
