package service

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"aos_backend/internals/configs"
)

// TokenTTL: umur access token admin.
const TokenTTL = 12 * time.Hour

var ErrInvalidCredentials = errors.New("invalid credentials")

// CheckCredentials: gate akses statis (username + password dari env).
// Bukan security boundary — tidak ada user store. Kalau
// ADMIN_PASSWORD_HASH diisi, compare pakai bcrypt; selain itu
// constant-time compare plain.
func CheckCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare(
		[]byte(username), []byte(configs.AdminUsername)) == 1

	if configs.AdminPasswordHash != "" {
		err := bcrypt.CompareHashAndPassword(
			[]byte(configs.AdminPasswordHash), []byte(password))
		return userOK && err == nil
	}

	passOK := subtle.ConstantTimeCompare(
		[]byte(password), []byte(configs.AdminPassword)) == 1
	return userOK && passOK
}

// GenerateToken bikin JWT admin (HS256) untuk group /api/a.
func GenerateToken(username string) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// ParseToken verifikasi token dan kembalikan subject-nya.
func ParseToken(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidCredentials
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrInvalidCredentials
	}
	return sub, nil
}
