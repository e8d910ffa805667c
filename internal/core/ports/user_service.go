package ports

import (
	"context"

	"github.com/ecommercekit/auth-api/internal/core/domain"
)

// RegisterInput carries the registration credentials. Never persisted as-is.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput carries login credentials. Never persisted as-is.
type LoginInput struct {
	Email    string
	Password string
}

// ProfileUpdate is a partial patch: empty fields leave the stored value
// untouched.
type ProfileUpdate struct {
	Username string
	Email    string
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (string, error)
	Login(ctx context.Context, in LoginInput) (string, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, patch ProfileUpdate) (*domain.User, error)
	Delete(ctx context.Context, userID string) error
}
