package ports

import (
	"context"

	"github.com/todoexpert/todo-system/internal/core/domain"
)

// ManagerRepository defines persistence operations for todo managers.
type ManagerRepository interface {
	Create(ctx context.Context, manager *domain.Manager) (*domain.Manager, error)
	FindByID(ctx context.Context, id int64) (*domain.Manager, error)
	// FindByTodoIDWithUser returns the todo's managers in insertion order with
	// the assigned users resolved.
	FindByTodoIDWithUser(ctx context.Context, todoID int64) ([]domain.ManagerWithUser, error)
	Delete(ctx context.Context, id int64) error
}
