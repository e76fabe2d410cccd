package ports

import (
	"context"

	"github.com/todoexpert/todo-system/internal/core/domain"
)

// CommentResult is a comment with its author's public profile.
type CommentResult struct {
	ID       int64
	Contents string
	User     UserSummary
}

type CommentService interface {
	SaveComment(ctx context.Context, caller domain.Caller, todoID int64, contents string) (*CommentResult, error)
	GetComments(ctx context.Context, todoID int64) ([]CommentResult, error)
	UpdateComment(ctx context.Context, caller domain.Caller, commentID int64, contents string) (*CommentResult, error)
	DeleteComment(ctx context.Context, commentID int64) error
}
