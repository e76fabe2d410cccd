package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/todoexpert/todo-system/internal/core/domain"
	"github.com/todoexpert/todo-system/internal/core/ports"
	"github.com/todoexpert/todo-system/internal/pkg/metrics"
)

type ManagerService struct {
	managers ports.ManagerRepository
	users    ports.UserRepository
	todos    ports.TodoRepository
	tokens   ports.TokenService
	log      zerolog.Logger
}

func NewManagerService(
	managers ports.ManagerRepository,
	users ports.UserRepository,
	todos ports.TodoRepository,
	tokens ports.TokenService,
	log zerolog.Logger,
) *ManagerService {
	return &ManagerService{
		managers: managers,
		users:    users,
		todos:    todos,
		tokens:   tokens,
		log:      log,
	}
}

// SaveManager assigns managerUserID to the todo on behalf of its owner.
func (s *ManagerService) SaveManager(ctx context.Context, caller domain.Caller, todoID, managerUserID int64) (*ports.ManagerResult, error) {
	todo, err := s.todos.FindByID(ctx, todoID)
	if err != nil {
		return nil, err
	}

	candidate, err := s.users.FindByID(ctx, managerUserID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanAssignManager(caller.ID, todo, candidate.ID); err != nil {
		s.deny(err, caller.ID, todoID)
		return nil, err
	}

	saved, err := s.managers.Create(ctx, &domain.Manager{TodoID: todo.ID, UserID: candidate.ID})
	if err != nil {
		return nil, fmt.Errorf("save manager: %w", err)
	}

	metrics.ManagersAssignedTotal.Inc()
	s.log.Info().
		Int64("todo_id", todo.ID).
		Int64("manager_id", saved.ID).
		Int64("user_id", candidate.ID).
		Msg("manager assigned")

	return &ports.ManagerResult{ID: saved.ID, User: ports.SummaryOf(*candidate)}, nil
}

// GetManagers lists a todo's managers in insertion order.
func (s *ManagerService) GetManagers(ctx context.Context, todoID int64) ([]ports.ManagerResult, error) {
	todo, err := s.todos.FindByID(ctx, todoID)
	if err != nil {
		return nil, err
	}

	managers, err := s.managers.FindByTodoIDWithUser(ctx, todo.ID)
	if err != nil {
		return nil, err
	}

	results := make([]ports.ManagerResult, len(managers))
	for i, m := range managers {
		results[i] = ports.ManagerResult{ID: m.ID, User: ports.SummaryOf(m.User)}
	}
	return results, nil
}

// DeleteManager removes a manager. The caller is identified from the token,
// then ownership is checked before the manager is even loaded.
func (s *ManagerService) DeleteManager(ctx context.Context, bearerToken string, todoID, managerID int64) error {
	claims, err := s.tokens.Verify(bearerToken)
	if err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return err
	}

	todo, err := s.todos.FindByID(ctx, todoID)
	if err != nil {
		return err
	}

	if err := domain.CheckTodoOwner(user.ID, todo); err != nil {
		s.deny(err, user.ID, todoID)
		return err
	}

	manager, err := s.managers.FindByID(ctx, managerID)
	if err != nil {
		return err
	}

	if err := domain.CheckManagerOfTodo(todo, manager); err != nil {
		s.deny(err, user.ID, todoID)
		return err
	}

	if err := s.managers.Delete(ctx, manager.ID); err != nil {
		return fmt.Errorf("delete manager: %w", err)
	}

	s.log.Info().Int64("todo_id", todo.ID).Int64("manager_id", manager.ID).Msg("manager removed")
	return nil
}

func (s *ManagerService) deny(err error, userID, todoID int64) {
	code := domain.CodeOf(err)
	metrics.AuthorizationDenialsTotal.WithLabelValues(code).Inc()

	ev := s.log.Warn()
	if err == domain.ErrOwnerMissing {
		ev = s.log.Error()
	}
	ev.Str("reason", code).Int64("user_id", userID).Int64("todo_id", todoID).Msg("manager change denied")
}
