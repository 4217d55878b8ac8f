package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	// RequestIDKey carries the request id set by the RequestID middleware
	RequestIDKey contextKey = "request_id"
	// CompanyIDKey carries the company the request operates on
	CompanyIDKey contextKey = "company_id"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// Setup configures the standard logrus logger: JSON output and the given level.
// Unknown levels fall back to info.
func Setup(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// WithContext creates a logger carrying request information found in ctx
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if ctx == nil {
		return logger
	}

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		logger.Entry = logger.Entry.WithField(string(RequestIDKey), requestID)
	}
	if companyID, ok := ctx.Value(CompanyIDKey).(string); ok && companyID != "" {
		logger.Entry = logger.Entry.WithField(string(CompanyIDKey), companyID)
	}

	return logger
}

// ContextWithRequestID returns a copy of ctx carrying the request id
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// ContextWithCompanyID returns a copy of ctx carrying the company id
func ContextWithCompanyID(ctx context.Context, companyID string) context.Context {
	return context.WithValue(ctx, CompanyIDKey, companyID)
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError adds an error to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
