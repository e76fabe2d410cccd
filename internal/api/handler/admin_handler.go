package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/todoexpert/todo-system/internal/core/ports"
)

// AdminHandler serves the administrative routes. Role checks happen in the
// RBAC middleware mounted on the admin group.
type AdminHandler struct {
	users    ports.UserService
	comments ports.CommentService
	access   ports.AdminAccessService
}

func NewAdminHandler(users ports.UserService, comments ports.CommentService, access ports.AdminAccessService) *AdminHandler {
	return &AdminHandler{users: users, comments: comments, access: access}
}

// ChangeUserRole handles PATCH /admin/users/:userId.
//
// @Summary      Change a user's role
// @Tags         admin
// @Accept       json
// @Security     BearerAuth
// @Param        userId  path  int                true  "User id"
// @Param        body    body  changeRoleRequest  true  "New role (ADMIN or USER)"
// @Success      200
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{userId} [patch]
func (h *AdminHandler) ChangeUserRole(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	var req changeRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.users.ChangeUserRole(c.Request().Context(), userID, req.Role); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// DeleteComment handles DELETE /admin/comments/:commentId.
//
// @Summary      Delete any comment
// @Tags         admin
// @Security     BearerAuth
// @Param        commentId  path  int  true  "Comment id"
// @Success      200
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/comments/{commentId} [delete]
func (h *AdminHandler) DeleteComment(c echo.Context) error {
	commentID, err := pathID(c, "commentId")
	if err != nil {
		return err
	}

	if err := h.comments.DeleteComment(c.Request().Context(), commentID); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// AccessLog handles GET /admin/access-log.
//
// @Summary      Recent administrative API calls, newest first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max records (default 50, max 500)"
// @Success      200    {array}   adminAccessResponse
// @Failure      403    {object}  errorResponse
// @Router       /admin/access-log [get]
func (h *AdminHandler) AccessLog(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = n
	}

	recs, err := h.access.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAdminAccessResponses(recs))
}
