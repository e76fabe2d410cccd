package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/todoexpert/todo-system/internal/core/ports"
	"github.com/todoexpert/todo-system/internal/pkg/metrics"
)

const (
	defaultAccessLimit = 50
	maxAccessLimit     = 500
)

// AccessQueue hands records to the background writers.
type AccessQueue interface {
	Enqueue(rec ports.AdminAccess)
}

type adminAccessService struct {
	queue AccessQueue
	log   ports.AccessLog
	out   zerolog.Logger
}

// NewAdminAccessService returns an AdminAccessService that logs each access
// and persists it through queue.
func NewAdminAccessService(queue AccessQueue, accessLog ports.AccessLog, log zerolog.Logger) ports.AdminAccessService {
	return &adminAccessService{queue: queue, log: accessLog, out: log}
}

func (s *adminAccessService) Record(_ context.Context, rec ports.AdminAccess) {
	s.out.Info().
		Int64("user_id", rec.UserID).
		Str("method", rec.Method).
		Str("request_uri", rec.RequestURI).
		Str("request_id", rec.RequestID).
		Time("request_time", rec.At).
		Msg("admin api access")

	metrics.AdminAccessTotal.WithLabelValues(rec.Method).Inc()
	s.queue.Enqueue(rec)
}

func (s *adminAccessService) Recent(ctx context.Context, limit int) ([]ports.AdminAccess, error) {
	if limit <= 0 {
		limit = defaultAccessLimit
	}
	if limit > maxAccessLimit {
		limit = maxAccessLimit
	}
	return s.log.Recent(ctx, int64(limit))
}
