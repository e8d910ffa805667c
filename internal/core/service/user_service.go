package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecommercekit/auth-api/internal/core/domain"
	"github.com/ecommercekit/auth-api/internal/core/ports"
)

const minPasswordLen = 8

// UserService orchestrates registration, login, and profile management. Each
// call is a single linear pass; nothing is shared between calls beyond the
// injected collaborators, all of which are safe for concurrent use.
type UserService struct {
	repo     ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
	recorder ports.EventRecorder
	tokenTTL time.Duration
	log      zerolog.Logger
}

func NewUserService(
	repo ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	recorder ports.EventRecorder,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *UserService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &UserService{
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		recorder: recorder,
		tokenTTL: tokenTTL,
		log:      log,
	}
}

// Register validates the input, checks email availability, hashes the
// password, persists the user with the default role, and returns a signed
// token for the new account.
//
// The FindByEmail check runs before hashing so an obviously taken email never
// costs a bcrypt round, but it is advisory only: the store's unique index is
// the authority, and a duplicate insert racing past the check still surfaces
// as ErrUserExists.
func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (string, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return "", domain.ErrInvalidInput
	}
	if len(in.Password) < minPasswordLen {
		return "", domain.ErrInvalidInput
	}

	email := normalizeEmail(in.Email)

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", s.storeErr(err)
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Username:     in.Username,
		Email:        email,
		PasswordHash: digest,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return "", domain.ErrUserExists
		}
		return "", s.storeErr(err)
	}

	tokenString, err := s.tokens.Issue(created.ID, created.Username, created.Role, created.Email, s.tokenTTL)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("email", created.Email).Str("user_id", created.ID).Msg("user registered")
	s.record(domain.ActionRegistered, created.Email)
	return tokenString, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password both return ErrInvalidCredentials so the response never reveals
// which accounts exist.
func (s *UserService) Login(ctx context.Context, in ports.LoginInput) (string, error) {
	email := normalizeEmail(in.Email)

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.record(domain.ActionLoginFailure, email)
			return "", domain.ErrInvalidCredentials
		}
		return "", s.storeErr(err)
	}

	if !s.hasher.Verify(in.Password, user.PasswordHash) {
		s.record(domain.ActionLoginFailure, email)
		return "", domain.ErrInvalidCredentials
	}

	tokenString, err := s.tokens.Issue(user.ID, user.Username, user.Role, user.Email, s.tokenTTL)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("email", user.Email).Str("user_id", user.ID).Msg("user logged in")
	s.record(domain.ActionLoginSuccess, user.Email)
	return tokenString, nil
}

// Profile returns the user for id with the password hash stripped.
func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, s.storeErr(err)
	}
	return stripped(user), nil
}

// UpdateProfile applies the non-empty fields of patch to the stored user and
// persists the result. Empty patch fields leave the current value untouched.
// Role and password are never touched by this path.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, patch ports.ProfileUpdate) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, s.storeErr(err)
	}

	if patch.Username != "" {
		user.Username = patch.Username
	}
	if patch.Email != "" {
		user.Email = normalizeEmail(patch.Email)
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return nil, domain.ErrUserNotFound
		case errors.Is(err, domain.ErrUserExists):
			return nil, domain.ErrUserExists
		}
		return nil, s.storeErr(err)
	}

	s.log.Info().Str("user_id", updated.ID).Msg("profile updated")
	return stripped(updated), nil
}

// Delete removes the user with the given id.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return s.storeErr(err)
	}
	s.log.Info().Str("user_id", userID).Msg("user deleted")
	return nil
}

// normalizeEmail canonicalizes emails to lower case. Uniqueness and login
// lookups are therefore case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func stripped(u *domain.User) *domain.User {
	clone := *u
	clone.PasswordHash = ""
	return &clone
}

// storeErr translates raw store failures, including calls cut short by the
// caller's timeout policy. The underlying cause is logged, never surfaced.
func (s *UserService) storeErr(err error) error {
	s.log.Error().Err(err).Msg("user store operation failed")
	return domain.ErrStoreUnavailable
}

func (s *UserService) record(action domain.AuthAction, email string) {
	if s.recorder == nil {
		return
	}
	s.recorder.Record(domain.AuthEvent{
		Email:      email,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	})
}
