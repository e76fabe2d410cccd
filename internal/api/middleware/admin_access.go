package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/todoexpert/todo-system/internal/core/domain"
	"github.com/todoexpert/todo-system/internal/core/ports"
)

// AdminAccess records every call that reaches an administrative route,
// before the handler runs. It must be installed after Auth.
func AdminAccess(audit ports.AdminAccessService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, _ := c.Get(CallerKey).(domain.Caller)
			req := c.Request()

			audit.Record(req.Context(), ports.AdminAccess{
				UserID:     caller.ID,
				Method:     req.Method,
				RequestURI: req.RequestURI,
				RequestID:  c.Response().Header().Get(echo.HeaderXRequestID),
				At:         time.Now().UTC(),
			})
			return next(c)
		}
	}
}
