package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/todoexpert/todo-system/internal/api/middleware"
	"github.com/todoexpert/todo-system/internal/core/domain"
	"github.com/todoexpert/todo-system/internal/core/ports"
)

// newCtx builds an echo context with the validator installed and, when body
// is non-empty, a JSON payload.
func newCtx(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withCaller(c echo.Context, caller domain.Caller) {
	c.Set(middleware.CallerKey, caller)
	c.Set(middleware.TokenKey, "Bearer token-for-caller")
}

func withParams(c echo.Context, kv ...string) {
	names := make([]string, 0, len(kv)/2)
	values := make([]string, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		names = append(names, kv[i])
		values = append(values, kv[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
}

type stubAuthService struct {
	signupFn func(ctx context.Context, email, password, role string) (string, *domain.User, error)
	signinFn func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Signup(ctx context.Context, email, password, role string) (string, *domain.User, error) {
	return s.signupFn(ctx, email, password, role)
}

func (s *stubAuthService) Signin(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.signinFn(ctx, email, password)
}

type stubUserService struct {
	getFn        func(ctx context.Context, userID int64) (*ports.UserSummary, error)
	changePassFn func(ctx context.Context, caller domain.Caller, old, new string) error
	changeRoleFn func(ctx context.Context, userID int64, role string) error
}

func (s *stubUserService) GetUser(ctx context.Context, userID int64) (*ports.UserSummary, error) {
	return s.getFn(ctx, userID)
}

func (s *stubUserService) ChangePassword(ctx context.Context, caller domain.Caller, old, new string) error {
	return s.changePassFn(ctx, caller, old, new)
}

func (s *stubUserService) ChangeUserRole(ctx context.Context, userID int64, role string) error {
	return s.changeRoleFn(ctx, userID, role)
}

type stubTodoService struct {
	saveFn func(ctx context.Context, caller domain.Caller, title, contents string) (*ports.TodoResult, error)
	listFn func(ctx context.Context, page, size int) (*ports.TodoPage, error)
	getFn  func(ctx context.Context, todoID int64) (*ports.TodoResult, error)
}

func (s *stubTodoService) SaveTodo(ctx context.Context, caller domain.Caller, title, contents string) (*ports.TodoResult, error) {
	return s.saveFn(ctx, caller, title, contents)
}

func (s *stubTodoService) GetTodos(ctx context.Context, page, size int) (*ports.TodoPage, error) {
	return s.listFn(ctx, page, size)
}

func (s *stubTodoService) GetTodo(ctx context.Context, todoID int64) (*ports.TodoResult, error) {
	return s.getFn(ctx, todoID)
}

type stubManagerService struct {
	saveFn   func(ctx context.Context, caller domain.Caller, todoID, userID int64) (*ports.ManagerResult, error)
	listFn   func(ctx context.Context, todoID int64) ([]ports.ManagerResult, error)
	deleteFn func(ctx context.Context, token string, todoID, managerID int64) error
}

func (s *stubManagerService) SaveManager(ctx context.Context, caller domain.Caller, todoID, userID int64) (*ports.ManagerResult, error) {
	return s.saveFn(ctx, caller, todoID, userID)
}

func (s *stubManagerService) GetManagers(ctx context.Context, todoID int64) ([]ports.ManagerResult, error) {
	return s.listFn(ctx, todoID)
}

func (s *stubManagerService) DeleteManager(ctx context.Context, token string, todoID, managerID int64) error {
	return s.deleteFn(ctx, token, todoID, managerID)
}

type stubCommentService struct {
	saveFn   func(ctx context.Context, caller domain.Caller, todoID int64, contents string) (*ports.CommentResult, error)
	listFn   func(ctx context.Context, todoID int64) ([]ports.CommentResult, error)
	updateFn func(ctx context.Context, caller domain.Caller, commentID int64, contents string) (*ports.CommentResult, error)
	deleteFn func(ctx context.Context, commentID int64) error
}

func (s *stubCommentService) SaveComment(ctx context.Context, caller domain.Caller, todoID int64, contents string) (*ports.CommentResult, error) {
	return s.saveFn(ctx, caller, todoID, contents)
}

func (s *stubCommentService) GetComments(ctx context.Context, todoID int64) ([]ports.CommentResult, error) {
	return s.listFn(ctx, todoID)
}

func (s *stubCommentService) UpdateComment(ctx context.Context, caller domain.Caller, commentID int64, contents string) (*ports.CommentResult, error) {
	return s.updateFn(ctx, caller, commentID, contents)
}

func (s *stubCommentService) DeleteComment(ctx context.Context, commentID int64) error {
	return s.deleteFn(ctx, commentID)
}

type stubAccessService struct {
	recentFn func(ctx context.Context, limit int) ([]ports.AdminAccess, error)
}

func (s *stubAccessService) Record(context.Context, ports.AdminAccess) {}

func (s *stubAccessService) Recent(ctx context.Context, limit int) ([]ports.AdminAccess, error) {
	return s.recentFn(ctx, limit)
}
