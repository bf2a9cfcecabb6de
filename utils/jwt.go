package utils

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoBearerToken = errors.New("authorization header must be \"Bearer <token>\"")

// JWTClaims is the payload of storefront session tokens. IsAdmin is a
// hint for clients only; the server re-reads the user on every request.
type JWTClaims struct {
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// ExtractTokenFromHeader returns the token of a "Bearer <token>" header.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return "", ErrNoBearerToken
	}
	return token, nil
}
