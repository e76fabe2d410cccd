package ports

import (
	"context"

	"github.com/todoexpert/todo-system/internal/core/domain"
)

// AuthService registers and authenticates users. Both operations return the
// raw signed token; the HTTP layer adds the "Bearer " scheme.
type AuthService interface {
	// Signup fails with EmailTaken for a registered address and InvalidRole
	// for an unknown role name.
	Signup(ctx context.Context, email, password, role string) (string, *domain.User, error)
	Signin(ctx context.Context, email, password string) (string, *domain.User, error)
}
