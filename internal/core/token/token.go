package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

const issuer = "ecommerce-api"

// Payload is the identity carried by a verified token. It is the only state
// shared between requests; there is no server-side session.
type Payload struct {
	UserID   string
	Username string
	Role     string
	Email    string
	IssuedAt time.Time
	Expires  time.Time
}

type claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Manager issues and verifies HMAC-SHA256 signed tokens. The secret is fixed
// at construction and only ever read, so a single Manager is safe for
// concurrent use.
type Manager struct {
	secret []byte
	log    zerolog.Logger
}

func NewManager(secret string, log zerolog.Logger) *Manager {
	return &Manager{secret: []byte(secret), log: log}
}

// Issue signs a token for the given identity, valid for ttl from now.
func (m *Manager) Issue(userID, username, role, email string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	c := claims{
		Username: username,
		Role:     role,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString(m.secret)
}

// Verify parses and validates a token string. It fails closed: malformed
// structure, signature mismatch, unexpected algorithm, and expiry all yield
// (nil, false). The reason is logged for diagnostics but never changes the
// reject decision.
func (m *Manager) Verify(tokenString string) (*Payload, bool) {
	var c claims
	tkn, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		m.log.Debug().Err(err).Msg("token verification failed")
		return nil, false
	}

	p := &Payload{
		UserID:   c.Subject,
		Username: c.Username,
		Role:     c.Role,
		Email:    c.Email,
	}
	if c.IssuedAt != nil {
		p.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		p.Expires = c.ExpiresAt.Time
	}
	return p, true
}
