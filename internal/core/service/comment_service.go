package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/todoexpert/todo-system/internal/core/domain"
	"github.com/todoexpert/todo-system/internal/core/ports"
	"github.com/todoexpert/todo-system/internal/pkg/metrics"
)

type CommentService struct {
	comments ports.CommentRepository
	todos    ports.TodoRepository
	managers ports.ManagerRepository
	policy   domain.CommentPolicy
	log      zerolog.Logger
}

func NewCommentService(
	comments ports.CommentRepository,
	todos ports.TodoRepository,
	managers ports.ManagerRepository,
	policy domain.CommentPolicy,
	log zerolog.Logger,
) *CommentService {
	return &CommentService{
		comments: comments,
		todos:    todos,
		managers: managers,
		policy:   policy,
		log:      log,
	}
}

// SaveComment attaches a comment by the caller to an existing todo.
func (s *CommentService) SaveComment(ctx context.Context, caller domain.Caller, todoID int64, contents string) (*ports.CommentResult, error) {
	todo, err := s.todos.FindByID(ctx, todoID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateCommentContents(contents); err != nil {
		return nil, err
	}

	var managers []domain.ManagerWithUser
	if s.policy == domain.CommentPolicyManagersOnly {
		if managers, err = s.managers.FindByTodoIDWithUser(ctx, todo.ID); err != nil {
			return nil, err
		}
	}
	if err := domain.CanSaveComment(s.policy, caller.ID, todo, managers); err != nil {
		metrics.AuthorizationDenialsTotal.WithLabelValues(domain.CodeOf(err)).Inc()
		s.log.Warn().Int64("user_id", caller.ID).Int64("todo_id", todo.ID).Msg("comment denied: not a manager")
		return nil, err
	}

	now := time.Now().UTC()
	saved, err := s.comments.Create(ctx, &domain.Comment{
		Contents:   contents,
		UserID:     caller.ID,
		TodoID:     todo.ID,
		CreatedAt:  now,
		ModifiedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("save comment: %w", err)
	}

	metrics.CommentsWrittenTotal.WithLabelValues("create").Inc()
	return &ports.CommentResult{
		ID:       saved.ID,
		Contents: saved.Contents,
		User:     ports.UserSummary{ID: caller.ID, Email: caller.Email},
	}, nil
}

func (s *CommentService) GetComments(ctx context.Context, todoID int64) ([]ports.CommentResult, error) {
	if _, err := s.todos.FindByID(ctx, todoID); err != nil {
		return nil, err
	}

	comments, err := s.comments.FindByTodoIDWithUser(ctx, todoID)
	if err != nil {
		return nil, err
	}

	results := make([]ports.CommentResult, len(comments))
	for i, c := range comments {
		results[i] = ports.CommentResult{ID: c.ID, Contents: c.Contents, User: ports.SummaryOf(c.User)}
	}
	return results, nil
}

// UpdateComment replaces the contents of a comment. Only its author may do so.
func (s *CommentService) UpdateComment(ctx context.Context, caller domain.Caller, commentID int64, contents string) (*ports.CommentResult, error) {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanUpdateComment(caller.ID, comment); err != nil {
		metrics.AuthorizationDenialsTotal.WithLabelValues(domain.CodeOf(err)).Inc()
		s.log.Warn().Int64("user_id", caller.ID).Int64("comment_id", comment.ID).Msg("comment update denied: not the author")
		return nil, err
	}

	if err := domain.ValidateCommentContents(contents); err != nil {
		return nil, err
	}

	updated, err := s.comments.UpdateContents(ctx, comment.ID, contents)
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	metrics.CommentsWrittenTotal.WithLabelValues("update").Inc()
	return &ports.CommentResult{
		ID:       updated.ID,
		Contents: updated.Contents,
		User:     ports.UserSummary{ID: caller.ID, Email: caller.Email},
	}, nil
}

// DeleteComment removes a comment. Reserved for administrators at the boundary.
func (s *CommentService) DeleteComment(ctx context.Context, commentID int64) error {
	if err := s.comments.DeleteByID(ctx, commentID); err != nil {
		return err
	}
	metrics.CommentsWrittenTotal.WithLabelValues("delete").Inc()
	s.log.Info().Int64("comment_id", commentID).Msg("comment deleted")
	return nil
}
