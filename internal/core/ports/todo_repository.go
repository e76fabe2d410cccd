package ports

import (
	"context"

	"github.com/todoexpert/todo-system/internal/core/domain"
)

// TodoRepository defines persistence operations for todos.
type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	FindByID(ctx context.Context, id int64) (*domain.Todo, error)
	FindByIDWithUser(ctx context.Context, id int64) (*domain.TodoWithUser, error)
	// List returns one page of todos, most recently modified first, and the total count.
	// page is 1-based.
	List(ctx context.Context, page, size int) ([]domain.TodoWithUser, int64, error)
}
