package ports

import (
	"context"
	"time"

	"github.com/todoexpert/todo-system/internal/core/domain"
)

// TodoResult is the todo view returned by TodoService.
type TodoResult struct {
	ID         int64
	Title      string
	Contents   string
	Weather    string
	User       UserSummary
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// TodoPage is one page of todos, most recently modified first.
type TodoPage struct {
	Items      []TodoResult
	Total      int64
	Page       int
	Size       int
	TotalPages int
}

type TodoService interface {
	SaveTodo(ctx context.Context, caller domain.Caller, title, contents string) (*TodoResult, error)
	GetTodos(ctx context.Context, page, size int) (*TodoPage, error)
	GetTodo(ctx context.Context, todoID int64) (*TodoResult, error)
}
