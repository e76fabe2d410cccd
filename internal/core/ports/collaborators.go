package ports

import (
	"context"
	"time"

	"github.com/todoexpert/todo-system/internal/core/domain"
)

// Claims is the identity payload carried by a bearer token.
type Claims struct {
	UserID int64
	Email  string
	Role   domain.Role
}

// Caller converts verified claims into the identity passed to services.
func (c Claims) Caller() domain.Caller {
	return domain.Caller{ID: c.UserID, Email: c.Email, Role: c.Role}
}

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Verify accepts the raw token or an "Authorization" header value with a
	// Bearer prefix. Fails with domain.ErrInvalidToken.
	Verify(token string) (Claims, error)
}

// PasswordHasher is a one-way password hash.
type PasswordHasher interface {
	Hash(raw string) (string, error)
	Matches(raw, encoded string) bool
}

// WeatherClient returns a short label describing today's weather.
type WeatherClient interface {
	TodayWeather(ctx context.Context) (string, error)
}

// AdminAccess is one audited call to an administrative endpoint.
type AdminAccess struct {
	UserID     int64
	Method     string
	RequestURI string
	RequestID  string
	At         time.Time
}

// AccessLog persists admin access records.
type AccessLog interface {
	Append(ctx context.Context, rec AdminAccess) error
	Recent(ctx context.Context, limit int64) ([]AdminAccess, error)
}
