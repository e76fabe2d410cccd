package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/todoexpert/todo-system/internal/core/domain"
	"github.com/todoexpert/todo-system/internal/core/ports"
	"github.com/todoexpert/todo-system/internal/pkg/metrics"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type TodoService struct {
	todos   ports.TodoRepository
	weather ports.WeatherClient
	log     zerolog.Logger
}

func NewTodoService(todos ports.TodoRepository, weather ports.WeatherClient, log zerolog.Logger) *TodoService {
	return &TodoService{todos: todos, weather: weather, log: log}
}

// SaveTodo creates a todo owned by the caller, annotated with today's weather.
// A failed weather lookup aborts before anything is stored.
func (s *TodoService) SaveTodo(ctx context.Context, caller domain.Caller, title, contents string) (*ports.TodoResult, error) {
	weather, err := s.weather.TodayWeather(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	todo, err := s.todos.Create(ctx, &domain.Todo{
		Title:      title,
		Contents:   contents,
		Weather:    weather,
		UserID:     caller.ID,
		CreatedAt:  now,
		ModifiedAt: now,
	})
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", caller.ID).Msg("failed to create todo")
		return nil, err
	}

	metrics.TodosCreatedTotal.Inc()
	s.log.Info().Int64("todo_id", todo.ID).Int64("user_id", caller.ID).Msg("todo created")

	return &ports.TodoResult{
		ID:         todo.ID,
		Title:      todo.Title,
		Contents:   todo.Contents,
		Weather:    todo.Weather,
		User:       ports.UserSummary{ID: caller.ID, Email: caller.Email},
		CreatedAt:  todo.CreatedAt,
		ModifiedAt: todo.ModifiedAt,
	}, nil
}

// GetTodos returns a page of todos, most recently modified first.
func (s *TodoService) GetTodos(ctx context.Context, page, size int) (*ports.TodoPage, error) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	items, total, err := s.todos.List(ctx, page, size)
	if err != nil {
		return nil, err
	}

	results := make([]ports.TodoResult, len(items))
	for i := range items {
		results[i] = toTodoResult(&items[i])
	}

	return &ports.TodoPage{
		Items:      results,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: int((total + int64(size) - 1) / int64(size)),
	}, nil
}

func (s *TodoService) GetTodo(ctx context.Context, todoID int64) (*ports.TodoResult, error) {
	todo, err := s.todos.FindByIDWithUser(ctx, todoID)
	if err != nil {
		return nil, err
	}
	result := toTodoResult(todo)
	return &result, nil
}

func toTodoResult(t *domain.TodoWithUser) ports.TodoResult {
	return ports.TodoResult{
		ID:         t.ID,
		Title:      t.Title,
		Contents:   t.Contents,
		Weather:    t.Weather,
		User:       ports.SummaryOf(t.User),
		CreatedAt:  t.CreatedAt,
		ModifiedAt: t.ModifiedAt,
	}
}
