package service

import (
	"context"
	"testing"

	"translation-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenSigner struct{}

func (fakeTokenSigner) Sign(userID int64) (string, error) {
	return "signed-token", nil
}

func TestAuthService_Register(t *testing.T) {
	repo := &fakeUserRepo{users: map[int64]*domain.User{}}
	svc := NewAuthService(repo, fakeTokenSigner{})

	result, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@x.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice", result.User.Name)
	assert.Equal(t, "alice@x.com", result.User.Email)
	assert.Equal(t, "signed-token", result.Token)

	stored, err := repo.GetByEmail(context.Background(), "alice@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored.PasswordHash, "password must be stored hashed")
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{users: map[int64]*domain.User{
		1: {ID: 1, Email: "alice@x.com"},
	}}
	svc := NewAuthService(repo, fakeTokenSigner{})

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@x.com",
		Password: "s3cret",
	})
	assert.ErrorIs(t, err, domain.ErrUserExists)
	assert.Len(t, repo.users, 1, "no user created on duplicate")
}

func TestAuthService_Login(t *testing.T) {
	repo := &fakeUserRepo{users: map[int64]*domain.User{}}
	svc := NewAuthService(repo, fakeTokenSigner{})

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@x.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "alice@x.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", result.User.Email)
	assert.Equal(t, "signed-token", result.Token)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := &fakeUserRepo{users: map[int64]*domain.User{}}
	svc := NewAuthService(repo, fakeTokenSigner{})

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@x.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email:    "alice@x.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := &fakeUserRepo{users: map[int64]*domain.User{}}
	svc := NewAuthService(repo, fakeTokenSigner{})

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@x.com",
		Password: "s3cret",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "unknown email must not be distinguishable from a wrong password")
}
