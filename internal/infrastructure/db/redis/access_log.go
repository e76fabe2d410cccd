package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/todoexpert/todo-system/internal/core/ports"
)

const (
	accessStream    = "admin:access"
	accessStreamCap = 10000
)

// AccessLog stores admin access records in a capped Redis stream.
type AccessLog struct {
	client *redis.Client
}

// NewAccessLog creates an AccessLog wrapping the given Redis client.
func NewAccessLog(client *redis.Client) *AccessLog {
	return &AccessLog{client: client}
}

// Append adds rec to the stream, trimming it to roughly accessStreamCap entries.
func (l *AccessLog) Append(ctx context.Context, rec ports.AdminAccess) error {
	err := l.client.XAdd(ctx, &redis.XAddArgs{
		Stream: accessStream,
		MaxLen: accessStreamCap,
		Approx: true,
		Values: encodeAccess(rec),
	}).Err()
	if err != nil {
		return fmt.Errorf("append access log: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (l *AccessLog) Recent(ctx context.Context, limit int64) ([]ports.AdminAccess, error) {
	msgs, err := l.client.XRevRangeN(ctx, accessStream, "+", "-", limit).Result()
	if err != nil {
		return nil, fmt.Errorf("read access log: %w", err)
	}

	out := make([]ports.AdminAccess, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, decodeAccess(m.Values))
	}
	return out, nil
}

func encodeAccess(rec ports.AdminAccess) map[string]any {
	return map[string]any{
		"user_id":     strconv.FormatInt(rec.UserID, 10),
		"method":      rec.Method,
		"request_uri": rec.RequestURI,
		"request_id":  rec.RequestID,
		"at":          rec.At.UTC().Format(time.RFC3339Nano),
	}
}

func decodeAccess(values map[string]any) ports.AdminAccess {
	str := func(key string) string {
		s, _ := values[key].(string)
		return s
	}
	userID, _ := strconv.ParseInt(str("user_id"), 10, 64)
	at, _ := time.Parse(time.RFC3339Nano, str("at"))
	return ports.AdminAccess{
		UserID:     userID,
		Method:     str("method"),
		RequestURI: str("request_uri"),
		RequestID:  str("request_id"),
		At:         at,
	}
}
