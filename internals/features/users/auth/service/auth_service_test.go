package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"aos_backend/internals/configs"
)

func withCreds(t *testing.T, username, password, hash, secret string) {
	t.Helper()
	prevUser, prevPass := configs.AdminUsername, configs.AdminPassword
	prevHash, prevSecret := configs.AdminPasswordHash, configs.JWTSecret
	configs.AdminUsername = username
	configs.AdminPassword = password
	configs.AdminPasswordHash = hash
	configs.JWTSecret = secret
	t.Cleanup(func() {
		configs.AdminUsername = prevUser
		configs.AdminPassword = prevPass
		configs.AdminPasswordHash = prevHash
		configs.JWTSecret = prevSecret
	})
}

func TestCheckCredentialsPlain(t *testing.T) {
	withCreds(t, "AOS221", "JHS221", "", "secret")

	assert.True(t, CheckCredentials("AOS221", "JHS221"))
	assert.False(t, CheckCredentials("AOS221", "salah"))
	assert.False(t, CheckCredentials("salah", "JHS221"))
	assert.False(t, CheckCredentials("", ""))
}

func TestCheckCredentialsBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("JHS221"), bcrypt.MinCost)
	require.NoError(t, err)
	withCreds(t, "AOS221", "", string(hash), "secret")

	assert.True(t, CheckCredentials("AOS221", "JHS221"))
	assert.False(t, CheckCredentials("AOS221", "salah"))
}

func TestTokenRoundTrip(t *testing.T) {
	withCreds(t, "AOS221", "JHS221", "", "unit-test-secret")

	token, err := GenerateToken("AOS221")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sub, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "AOS221", sub)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	withCreds(t, "AOS221", "JHS221", "", "secret-satu")
	token, err := GenerateToken("AOS221")
	require.NoError(t, err)

	configs.JWTSecret = "secret-dua"
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	withCreds(t, "AOS221", "JHS221", "", "secret")
	_, err := ParseToken("bukan.token.jwt")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	withCreds(t, "AOS221", "JHS221", "", "")
	_, err := GenerateToken("AOS221")
	assert.Error(t, err)
}
