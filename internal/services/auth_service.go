package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/llum/portfolio-api/internal/auth"
	"github.com/llum/portfolio-api/internal/repository"
	"gorm.io/gorm"
)

// ErrInvalidCredentials covers both unknown email and wrong password so
// a failed login never signals which one it was.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService handles credential verification and token issuance.
type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns a signed bearer token.
func (s *AuthService) Login(input LoginInput) (string, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if !auth.CheckPasswordHash(input.Password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}
