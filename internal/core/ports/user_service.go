package ports

import (
	"context"

	"github.com/todoexpert/todo-system/internal/core/domain"
)

// UserSummary is the public profile of a user.
type UserSummary struct {
	ID    int64
	Email string
}

// SummaryOf strips a user down to its public profile.
func SummaryOf(u domain.User) UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email}
}

// UserService covers profile reads, password changes and role changes.
type UserService interface {
	GetUser(ctx context.Context, userID int64) (*UserSummary, error)
	ChangePassword(ctx context.Context, caller domain.Caller, oldPassword, newPassword string) error
	ChangeUserRole(ctx context.Context, userID int64, roleName string) error
}
