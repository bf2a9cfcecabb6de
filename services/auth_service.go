package services

import (
	"errors"
	"fmt"

	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/store"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService logs fixture users in with the shared demo password.
type AuthService struct {
	users        *store.UserStore
	jwt          *JWTService
	passwordHash []byte
}

// NewAuthService hashes demoPassword once at start-up.
func NewAuthService(users *store.UserStore, jwt *JWTService, demoPassword string) (*AuthService, error) {
	hash, err := HashPassword(demoPassword)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}
	return &AuthService{users: users, jwt: jwt, passwordHash: []byte(hash)}, nil
}

// ════════════════════════════════════════════════════════════
// Password Management
// ════════════════════════════════════════════════════════════

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ════════════════════════════════════════════════════════════
// Session Tokens
// ════════════════════════════════════════════════════════════

// Login returns the user and a signed token. Unknown email and wrong
// password fail the same way.
func (s *AuthService) Login(email, password string) (models.User, string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, "", ErrInvalidCredentials
		}
		return models.User{}, "", err
	}
	if !VerifyPassword(string(s.passwordHash), password) {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := s.jwt.Generate(user)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Authenticate resolves a token back to the current user record.
func (s *AuthService) Authenticate(token string) (models.User, error) {
	claims, err := s.jwt.Verify(token)
	if err != nil {
		return models.User{}, err
	}
	return s.users.Get(claims.UserID)
}
