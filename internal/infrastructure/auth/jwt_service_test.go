package auth

import (
	"testing"
	"time"

	"github.com/kakemizuh/gameeconomy/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})

	token, err := svc.GenerateToken("7", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.PlayerID)
	assert.Equal(t, "alice", claims.Name)
	assert.Equal(t, "game-economy", claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	other := NewJWTService(&config.JWTConfig{Secret: "other-secret", Expiry: time.Hour})

	token, err := svc.GenerateToken("7", "alice")
	require.NoError(t, err)

	claims, err := other.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: -time.Minute})

	token, err := svc.GenerateToken("7", "alice")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})

	claims, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
