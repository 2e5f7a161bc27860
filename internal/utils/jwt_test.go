package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestNewAccessToken(t *testing.T) {
	access, err := NewAccessToken("secret", 7, "alice", 15)
	assert.NoError(t, err)
	assert.NotEmpty(t, access.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(15*time.Minute), access.Exp, 5*time.Second)

	tok, err := jwt.Parse(access.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	assert.NoError(t, err)
	assert.True(t, tok.Valid)

	claims, ok := tok.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, float64(7), claims["sub"])
	assert.Equal(t, "alice", claims["username"])
}

func TestNewAccessTokenWrongSecret(t *testing.T) {
	access, err := NewAccessToken("secret", 7, "alice", 15)
	assert.NoError(t, err)

	_, err = jwt.Parse(access.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("other"), nil
	})
	assert.Error(t, err)
}
