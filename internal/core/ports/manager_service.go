package ports

import (
	"context"

	"github.com/todoexpert/todo-system/internal/core/domain"
)

// ManagerResult is a manager id with the assigned user's public profile.
type ManagerResult struct {
	ID   int64
	User UserSummary
}

type ManagerService interface {
	SaveManager(ctx context.Context, caller domain.Caller, todoID, managerUserID int64) (*ManagerResult, error)
	GetManagers(ctx context.Context, todoID int64) ([]ManagerResult, error)
	// DeleteManager identifies the caller from bearerToken itself.
	DeleteManager(ctx context.Context, bearerToken string, todoID, managerID int64) error
}
