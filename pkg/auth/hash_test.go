package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	service := &HashService{}

	hash, err := service.HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	_, err = service.HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)

	_, err = service.HashPassword(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestComparePassword(t *testing.T) {
	service := &HashService{}

	hash, err := service.HashPassword("password123")
	assert.NoError(t, err)

	assert.True(t, service.ComparePassword(hash, "password123"))
	assert.False(t, service.ComparePassword(hash, "wrong-password"))
	assert.False(t, service.ComparePassword("not-a-hash", "password123"))
}
