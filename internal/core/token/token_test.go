package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

func newTestManager(secret string) *Manager {
	return NewManager(secret, zerolog.Nop())
}

func TestManager_RoundTrip(t *testing.T) {
	m := newTestManager("secret")

	signed, err := m.Issue("42", "alice", "user", "alice@example.com", time.Minute)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected non-empty token")
	}

	payload, ok := m.Verify(signed)
	if !ok {
		t.Fatalf("Verify rejected a freshly issued token")
	}
	if payload.UserID != "42" {
		t.Fatalf("unexpected subject: %s", payload.UserID)
	}
	if payload.Username != "alice" || payload.Role != "user" || payload.Email != "alice@example.com" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if !payload.Expires.After(payload.IssuedAt) {
		t.Fatalf("expires %v not after issued %v", payload.Expires, payload.IssuedAt)
	}
}

func TestManager_Verify_Expired(t *testing.T) {
	m := newTestManager("secret")

	signed, err := m.Issue("42", "alice", "user", "alice@example.com", -time.Millisecond)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if payload, ok := m.Verify(signed); ok {
		t.Fatalf("expected expired token to be rejected, got payload %+v", payload)
	}
}

func TestManager_Verify_WrongSecret(t *testing.T) {
	signed, err := newTestManager("secret-a").Issue("42", "alice", "user", "a@x.com", time.Minute)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, ok := newTestManager("secret-b").Verify(signed); ok {
		t.Fatalf("expected token signed with another secret to be rejected")
	}
}

func TestManager_Verify_UnexpectedAlgorithm(t *testing.T) {
	// Same secret, different HMAC variant. The verifier pins HS256.
	tkn := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	signed, err := tkn.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, ok := newTestManager("secret").Verify(signed); ok {
		t.Fatalf("expected HS512 token to be rejected")
	}
}

func TestManager_Verify_Malformed(t *testing.T) {
	m := newTestManager("secret")
	for _, tokenString := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, ok := m.Verify(tokenString); ok {
			t.Fatalf("expected %q to be rejected", tokenString)
		}
	}
}
