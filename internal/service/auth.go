package service

import (
	"context"
	"errors"
	"fmt"

	"translation-service/internal/auth"
	"translation-service/internal/domain"

	log "github.com/sirupsen/logrus"
)

type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TokenSigner issues access tokens carrying a user id.
type TokenSigner interface {
	Sign(userID int64) (string, error)
}

type authService struct {
	userRepo UserRepository
	tokens   TokenSigner
}

func NewAuthService(userRepo UserRepository, tokens TokenSigner) *authService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResult, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		log.WithError(err).WithField("email", req.Email).Error("Failed to check user existence")
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, req.Name, req.Email, hash)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Sign(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	log.WithFields(log.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("User registered")

	return &domain.AuthResult{
		User:  domain.PublicUser{ID: user.ID, Name: user.Name, Email: user.Email},
		Token: token,
	}, nil
}

func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in")

	return &domain.AuthResult{
		User:  domain.PublicUser{ID: user.ID, Name: user.Name, Email: user.Email},
		Token: token,
	}, nil
}
