package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (l *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.keys = append(l.keys, key)
	return l.allow, l.err
}

func limitContext(e *echo.Echo) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestRateLimit_Allows(t *testing.T) {
	e := echo.New()
	limiter := &stubLimiter{allow: true}

	called := false
	handler := RateLimit(limiter, zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(limitContext(e)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if len(limiter.keys) != 1 || limiter.keys[0] != "10.0.0.1" {
		t.Fatalf("expected limiter keyed by client IP, got %v", limiter.keys)
	}
}

func TestRateLimit_Blocks(t *testing.T) {
	e := echo.New()
	limiter := &stubLimiter{allow: false}

	handler := RateLimit(limiter, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(limitContext(e))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %v", err)
	}
}

func TestRateLimit_FailsOpen(t *testing.T) {
	e := echo.New()
	limiter := &stubLimiter{err: errors.New("redis down")}

	called := false
	handler := RateLimit(limiter, zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(limitContext(e)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("limiter failure must not block the request")
	}
}
