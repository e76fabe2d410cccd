package ports

import (
	"context"

	"github.com/todoexpert/todo-system/internal/core/domain"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id int64) (*domain.Comment, error)
	FindByTodoIDWithUser(ctx context.Context, todoID int64) ([]domain.CommentWithUser, error)
	UpdateContents(ctx context.Context, id int64, contents string) (*domain.Comment, error)
	// DeleteByID returns domain.ErrCommentNotFound when nothing was deleted.
	DeleteByID(ctx context.Context, id int64) error
}
