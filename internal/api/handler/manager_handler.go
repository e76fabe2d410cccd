package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/todoexpert/todo-system/internal/core/ports"
)

type ManagerHandler struct {
	service ports.ManagerService
}

func NewManagerHandler(service ports.ManagerService) *ManagerHandler {
	return &ManagerHandler{service: service}
}

// Create handles POST /todos/:todoId/managers.
//
// @Summary      Assign a manager to a todo
// @Description  Only the todo owner may assign managers, and never themselves.
// @Tags         managers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        todoId  path      int                 true  "Todo id"
// @Param        body    body      saveManagerRequest  true  "Candidate user"
// @Success      200     {object}  managerResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /todos/{todoId}/managers [post]
func (h *ManagerHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	todoID, err := pathID(c, "todoId")
	if err != nil {
		return err
	}

	var req saveManagerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	manager, err := h.service.SaveManager(c.Request().Context(), caller, todoID, req.ManagerUserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toManagerResponse(*manager))
}

// List handles GET /todos/:todoId/managers.
//
// @Summary      List a todo's managers
// @Tags         managers
// @Produce      json
// @Security     BearerAuth
// @Param        todoId  path      int  true  "Todo id"
// @Success      200     {array}   managerResponse
// @Failure      404     {object}  errorResponse
// @Router       /todos/{todoId}/managers [get]
func (h *ManagerHandler) List(c echo.Context) error {
	todoID, err := pathID(c, "todoId")
	if err != nil {
		return err
	}

	managers, err := h.service.GetManagers(c.Request().Context(), todoID)
	if err != nil {
		return err
	}

	resp := make([]managerResponse, len(managers))
	for i, m := range managers {
		resp[i] = toManagerResponse(m)
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /todos/:todoId/managers/:managerId.
//
// @Summary      Remove a manager from a todo
// @Tags         managers
// @Security     BearerAuth
// @Param        todoId     path  int  true  "Todo id"
// @Param        managerId  path  int  true  "Manager id"
// @Success      200
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /todos/{todoId}/managers/{managerId} [delete]
func (h *ManagerHandler) Delete(c echo.Context) error {
	todoID, err := pathID(c, "todoId")
	if err != nil {
		return err
	}
	managerID, err := pathID(c, "managerId")
	if err != nil {
		return err
	}

	if err := h.service.DeleteManager(c.Request().Context(), ctxToken(c), todoID, managerID); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
