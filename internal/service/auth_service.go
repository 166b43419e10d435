package service

import (
	"context"
	"errors"

	"reports-backend/internal/middleware"
	"reports-backend/internal/model"
	"reports-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// DTOs for Request validation
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// AuthService issues the admin tokens the report gate checks. Report
// generation itself never sees credentials, only the gate's verdict.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	EnsureAdmin(ctx context.Context, username, email, password string) error
}

type authService struct {
	repo repository.UserRepository
}

func NewAuthService(repo repository.UserRepository) AuthService {
	return &authService{repo: repo}
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	// Generate JWT Token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
	})

	tokenString, err := token.SignedString(middleware.GetJWTSecret())
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &TokenResponse{Token: tokenString}, nil
}

// EnsureAdmin seeds the admin account at startup so the report endpoints are
// reachable on a fresh database. No-op when the account already exists.
func (s *authService) EnsureAdmin(ctx context.Context, username, email, password string) error {
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash password")
	}

	return s.repo.Create(ctx, &model.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
		Role:     "admin",
	})
}
