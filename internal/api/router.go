package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/todoexpert/todo-system/internal/api/handler"
	"github.com/todoexpert/todo-system/internal/api/middleware"
	"github.com/todoexpert/todo-system/internal/core/domain"
	"github.com/todoexpert/todo-system/internal/core/ports"
)

// Deps carries everything the router needs to build its handlers.
type Deps struct {
	Auth     ports.AuthService
	Users    ports.UserService
	Todos    ports.TodoService
	Managers ports.ManagerService
	Comments ports.CommentService
	Access   ports.AdminAccessService
	Tokens   ports.TokenService

	// HealthChecks are probed by GET /health/ready, keyed by dependency name.
	HealthChecks map[string]handler.Check

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddleware("todo"))

	// --- Operational routes (no auth required) ---
	health := handler.NewHealthHandler(deps.HealthChecks)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/signin", authHandler.Signin)

	// --- Authenticated routes ---
	authn := middleware.Auth(deps.Tokens)

	users := handler.NewUserHandler(deps.Users)
	todos := handler.NewTodoHandler(deps.Todos)
	managers := handler.NewManagerHandler(deps.Managers)
	comments := handler.NewCommentHandler(deps.Comments)

	userGroup := e.Group("/users", authn)
	userGroup.PUT("", users.ChangePassword)
	userGroup.GET("/:userId", users.Get)

	todoGroup := e.Group("/todos", authn)
	todoGroup.POST("", todos.Create)
	todoGroup.GET("", todos.List)
	todoGroup.GET("/:todoId", todos.Get)
	todoGroup.POST("/:todoId/managers", managers.Create)
	todoGroup.GET("/:todoId/managers", managers.List)
	todoGroup.DELETE("/:todoId/managers/:managerId", managers.Delete)
	todoGroup.POST("/:todoId/comments", comments.Create)
	todoGroup.GET("/:todoId/comments", comments.List)

	commentGroup := e.Group("/comments", authn)
	commentGroup.PUT("/:commentId", comments.Update)

	// --- Admin routes ---
	admin := handler.NewAdminHandler(deps.Users, deps.Comments, deps.Access)
	adminGroup := e.Group("/admin",
		authn,
		middleware.RBAC(domain.RoleAdmin),
		middleware.AdminAccess(deps.Access),
	)
	adminGroup.PATCH("/users/:userId", admin.ChangeUserRole)
	adminGroup.DELETE("/comments/:commentId", admin.DeleteComment)
	adminGroup.GET("/access-log", admin.AccessLog)

	return e
}
