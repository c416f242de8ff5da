package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("s3cret", nil)

	token, err := issuer.GenerateJWT("admin@medicare.com", "admin")
	require.NoError(t, err)

	claims, err := issuer.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@medicare.com", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer := NewTokenIssuer("s3cret", nil)
	token, err := issuer.GenerateJWT("admin", "admin")
	require.NoError(t, err)

	t.Run("other secret", func(t *testing.T) {
		_, err := NewTokenIssuer("other", nil).ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		later := NewTokenIssuer("s3cret", func() time.Time { return time.Now().Add(48 * time.Hour) })
		_, err := later.ValidateJWT(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.ValidateJWT("not.a.token")
		assert.Error(t, err)
	})

	t.Run("no secret", func(t *testing.T) {
		_, err := NewTokenIssuer("", nil).GenerateJWT("admin", "admin")
		assert.ErrorIs(t, err, ErrNoSecret)
	})
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("correct horse", string(hash)))
	assert.False(t, CheckPasswordHash("battery staple", string(hash)))
	assert.False(t, CheckPasswordHash("anything", ""))
}
