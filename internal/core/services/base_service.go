package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/abdulhafizu/HafeezVentures2/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Now returns the current time. Tests replace it to get stable audit stamps.
	Now func() time.Time
}

func newBaseService() BaseService {
	return BaseService{Now: time.Now}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// now returns the current UTC time truncated to microseconds, the precision Postgres stores.
func (s *BaseService) now() time.Time {
	clock := s.Now
	if clock == nil {
		clock = time.Now
	}
	return clock().UTC().Truncate(time.Microsecond)
}

// ServiceOption configures the shared BaseService of any service.
type ServiceOption func(*BaseService)

// WithClock overrides the time source used for audit fields.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Now = now
	}
}

func applyOptions(base *BaseService, options []ServiceOption) {
	for _, option := range options {
		option(base)
	}
}

// dateOrNow returns *d when set, otherwise now.
func dateOrNow(d *time.Time, now time.Time) time.Time {
	if d == nil || d.IsZero() {
		return now
	}
	return *d
}

// optionalRef returns nil for nil or blank references.
func optionalRef(ref *string) *string {
	if ref == nil || *ref == "" {
		return nil
	}
	return ref
}
