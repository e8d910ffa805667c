package ports

import (
	"time"

	"github.com/ecommercekit/auth-api/internal/core/domain"
)

// PasswordHasher is the one-way credential hashing capability.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches digest. A malformed digest
	// yields false, never an abort of the caller's flow.
	Verify(plaintext, digest string) bool
}

// TokenIssuer mints signed identity tokens.
type TokenIssuer interface {
	Issue(userID, username, role, email string, ttl time.Duration) (string, error)
}

// EventRecorder accepts audit events for asynchronous persistence.
// Implementations must not block the request path.
type EventRecorder interface {
	Record(event domain.AuthEvent)
}
