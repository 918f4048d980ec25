package service

import (
	"context"
	"errors"
	"time"

	"github.com/nsharma-dev/institute_admin/internal/events"
	"github.com/nsharma-dev/institute_admin/internal/logging"
)

var (
	ErrConflict              = errors.New("already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrValidation            = errors.New("validation error")
	ErrNotFound              = errors.New("not found")
	ErrSessionRevoked        = errors.New("session revoked")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrDeliveryFailed        = errors.New("email could not be sent")
	ErrSearchUnavailable     = errors.New("search is not available")
)

// publish emits a best-effort domain event. Failures are logged, never
// surfaced to the caller.
func publish(ctx context.Context, p events.Publisher, topic, key string, event any) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "topic", topic, "error", err)
	}
}

// parseDate accepts the "2006-01-02" form dates and falls back to RFC 3339.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
