package ports

import (
	"context"

	"github.com/ecommercekit/auth-api/internal/core/domain"
)

// UserRepository defines the persistence surface for user accounts.
// Create is the authoritative uniqueness guard: it must reject a duplicate
// email even when a concurrent registration slipped past the service's
// advisory existence check.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// AuditRepository persists authentication audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuthEvent) error
}
