package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/todoexpert/todo-system/internal/core/ports"
)

// TodoHandler handles HTTP requests for todo operations.
type TodoHandler struct {
	service ports.TodoService
}

func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// Create handles POST /todos.
//
// @Summary      Create a todo
// @Description  The todo is owned by the caller and annotated with today's weather.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveTodoRequest  true  "Todo"
// @Success      200   {object}  todoResponse
// @Failure      400   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /todos [post]
func (h *TodoHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req saveTodoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	todo, err := h.service.SaveTodo(c.Request().Context(), caller, req.Title, req.Contents)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTodoResponse(todo))
}

// List handles GET /todos.
//
// @Summary      List todos, most recently modified first
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "1-based page"  default(1)
// @Param        size  query     int  false  "Page size"     default(10)
// @Success      200   {object}  todoPageResponse
// @Router       /todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	var q pageQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid paging parameters")
	}

	page, err := h.service.GetTodos(c.Request().Context(), q.Page, q.Size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTodoPageResponse(page))
}

// Get handles GET /todos/:todoId.
//
// @Summary      Get a todo
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        todoId  path      int  true  "Todo id"
// @Success      200     {object}  todoResponse
// @Failure      404     {object}  errorResponse
// @Router       /todos/{todoId} [get]
func (h *TodoHandler) Get(c echo.Context) error {
	todoID, err := pathID(c, "todoId")
	if err != nil {
		return err
	}

	todo, err := h.service.GetTodo(c.Request().Context(), todoID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTodoResponse(todo))
}
