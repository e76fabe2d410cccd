package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/todoexpert/todo-system/internal/core/domain"
	"github.com/todoexpert/todo-system/internal/core/ports"
)

type UserService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	log    zerolog.Logger
}

func NewUserService(users ports.UserRepository, hasher ports.PasswordHasher, log zerolog.Logger) *UserService {
	return &UserService{users: users, hasher: hasher, log: log}
}

func (s *UserService) GetUser(ctx context.Context, userID int64) (*ports.UserSummary, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := ports.SummaryOf(*user)
	return &summary, nil
}

// ChangePassword rotates the caller's password. The policy check runs before
// any store access.
func (s *UserService) ChangePassword(ctx context.Context, caller domain.Caller, oldPassword, newPassword string) error {
	if err := domain.ValidatePassword(newPassword); err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, caller.ID)
	if err != nil {
		return err
	}

	// The old password must match before anything else is compared against
	// the stored hash.
	if !s.hasher.Matches(oldPassword, user.PasswordHash) {
		return domain.ErrBadCredentials
	}
	if s.hasher.Matches(newPassword, user.PasswordHash) {
		return domain.ErrPasswordUnchanged
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	s.log.Info().Int64("user_id", user.ID).Msg("password changed")
	return nil
}

// ChangeUserRole sets a user's role. Whether the requester may do this is
// decided at the transport boundary.
func (s *UserService) ChangeUserRole(ctx context.Context, userID int64, roleName string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	role, err := domain.ParseRole(roleName)
	if err != nil {
		return err
	}

	if err := s.users.UpdateRole(ctx, user.ID, role); err != nil {
		return err
	}

	s.log.Info().Int64("user_id", user.ID).Str("role", role.String()).Msg("user role changed")
	return nil
}
