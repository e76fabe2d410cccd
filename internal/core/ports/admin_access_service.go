package ports

import "context"

// AdminAccessService audits calls to administrative endpoints.
type AdminAccessService interface {
	Record(ctx context.Context, rec AdminAccess)
	Recent(ctx context.Context, limit int) ([]AdminAccess, error)
}
