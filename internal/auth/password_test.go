package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	password := "abcd1234"
	hashed, err := HashPassword(password)

	assert.NoError(t, err)
	assert.NotEmpty(t, hashed)
	assert.NotEqual(t, password, hashed)
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	h1, err := HashPassword("abcd1234")
	assert.NoError(t, err)
	h2, err := HashPassword("abcd1234")
	assert.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPassword("abcd1234", h1))
	assert.True(t, CheckPassword("abcd1234", h2))
}

func TestCheckPassword(t *testing.T) {
	hashed, _ := HashPassword("abcd1234")

	assert.True(t, CheckPassword("abcd1234", hashed))
	assert.False(t, CheckPassword("wrongpassword", hashed))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("abcd1234", "invalidhash"))
}
