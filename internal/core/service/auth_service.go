package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/todoexpert/todo-system/internal/core/domain"
	"github.com/todoexpert/todo-system/internal/core/ports"
)

// AuthService implements signup and signin.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, log: log}
}

// Signup registers a new account and returns a token for it.
func (s *AuthService) Signup(ctx context.Context, email, password, role string) (string, *domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", nil, domain.ErrEmailRequired
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if exists {
		return "", nil, domain.ErrEmailTaken
	}

	userRole, err := domain.ParseRole(role)
	if err != nil {
		return "", nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         userRole,
		CreatedAt:    now,
		ModifiedAt:   now,
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Int64("user_id", created.ID).Str("role", created.Role.String()).Msg("user signed up")
	return token, created, nil
}

// Signin checks credentials and returns a fresh token.
func (s *AuthService) Signin(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrBadCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if !s.hasher.Matches(password, user.PasswordHash) {
		s.log.Warn().Int64("user_id", user.ID).Msg("signin rejected: wrong password")
		return "", nil, domain.ErrBadCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
