package domain

import "errors"

// Error families. Every domain error unwraps to exactly one of these, so the
// transport layer can map a whole family to one status code.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("unavailable")
)

// Error is a typed domain error. Code is a stable machine-readable kind,
// Message is safe to show to the caller.
type Error struct {
	Kind    error
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the family sentinel to errors.Is.
func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

// NotFound family.
var (
	ErrTodoNotFound    = newError(ErrNotFound, "TODO_NOT_FOUND", "todo not found")
	ErrUserNotFound    = newError(ErrNotFound, "USER_NOT_FOUND", "user not found")
	ErrManagerNotFound = newError(ErrNotFound, "MANAGER_NOT_FOUND", "manager not found")
	ErrCommentNotFound = newError(ErrNotFound, "COMMENT_NOT_FOUND", "comment not found")
)

// Forbidden family.
var (
	ErrOwnerMissing     = newError(ErrForbidden, "OWNER_MISSING", "todo has no valid owner")
	ErrNotOwner         = newError(ErrForbidden, "NOT_OWNER", "only the user who created the todo may do this")
	ErrSelfAssignment   = newError(ErrForbidden, "SELF_ASSIGNMENT", "the todo owner cannot be assigned as its own manager")
	ErrManagerNotOfTodo = newError(ErrForbidden, "MANAGER_NOT_OF_TODO", "manager is not assigned to this todo")
	ErrNotAuthor        = newError(ErrForbidden, "NOT_AUTHOR", "only the author may update this comment")
	ErrNotManager       = newError(ErrForbidden, "NOT_MANAGER", "only the owner or a manager of the todo may comment")
)

// Validation family.
var (
	ErrBlankContent      = newError(ErrValidation, "BLANK_CONTENT", "comment contents must not be blank")
	ErrContentTooLong    = newError(ErrValidation, "CONTENT_TOO_LONG", "comment contents exceed 1000 characters")
	ErrInvalidRole       = newError(ErrValidation, "INVALID_ROLE", "invalid user role")
	ErrPasswordPolicy    = newError(ErrValidation, "PASSWORD_POLICY_VIOLATION", "new password must be at least 8 characters and contain a digit and an upper-case letter")
	ErrPasswordUnchanged = newError(ErrValidation, "PASSWORD_UNCHANGED", "new password must differ from the current password")
	ErrEmailRequired     = newError(ErrValidation, "EMAIL_REQUIRED", "email is required")
	ErrEmailTaken        = newError(ErrValidation, "EMAIL_TAKEN", "email is already registered")

	ErrInvalidCommentPolicy = newError(ErrValidation, "INVALID_COMMENT_POLICY", `comment policy must be "any" or "managers"`)
)

// Auth family.
var (
	ErrInvalidToken   = newError(ErrUnauthorized, "INVALID_TOKEN", "invalid or expired token")
	ErrBadCredentials = newError(ErrUnauthorized, "BAD_CREDENTIALS", "invalid credentials")
)

// Unavailable family.
var ErrWeatherUnavailable = newError(ErrUnavailable, "WEATHER_UNAVAILABLE", "weather data is not available for today")

// CodeOf returns the stable code of a domain error, or "" for anything else.
func CodeOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
