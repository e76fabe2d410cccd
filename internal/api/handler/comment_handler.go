package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/todoexpert/todo-system/internal/core/ports"
)

type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create handles POST /todos/:todoId/comments.
//
// @Summary      Comment on a todo
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        todoId  path      int             true  "Todo id"
// @Param        body    body      commentRequest  true  "Comment"
// @Success      200     {object}  commentResponse
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /todos/{todoId}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	todoID, err := pathID(c, "todoId")
	if err != nil {
		return err
	}

	var req commentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.service.SaveComment(c.Request().Context(), caller, todoID, req.Contents)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentResponse(*comment))
}

// List handles GET /todos/:todoId/comments.
//
// @Summary      List a todo's comments
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        todoId  path      int  true  "Todo id"
// @Success      200     {array}   commentResponse
// @Failure      404     {object}  errorResponse
// @Router       /todos/{todoId}/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	todoID, err := pathID(c, "todoId")
	if err != nil {
		return err
	}

	comments, err := h.service.GetComments(c.Request().Context(), todoID)
	if err != nil {
		return err
	}

	resp := make([]commentResponse, len(comments))
	for i, cm := range comments {
		resp[i] = toCommentResponse(cm)
	}
	return c.JSON(http.StatusOK, resp)
}

// Update handles PUT /comments/:commentId.
//
// @Summary      Edit a comment
// @Description  Only the comment's author may edit it.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        commentId  path      int             true  "Comment id"
// @Param        body       body      commentRequest  true  "New contents"
// @Success      200        {object}  commentResponse
// @Failure      400        {object}  errorResponse
// @Failure      403        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /comments/{commentId} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	commentID, err := pathID(c, "commentId")
	if err != nil {
		return err
	}

	var req commentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.service.UpdateComment(c.Request().Context(), caller, commentID, req.Contents)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentResponse(*comment))
}
