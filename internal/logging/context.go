package logging

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
)

// contextKey is a type for context keys used by this package.
type contextKey int

const (
	sessionIDKey contextKey = iota
)

// GenerateSessionID creates a new unique session ID.
// Format: 16 character hex string (8 random bytes).
func GenerateSessionID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "00000000"
	}
	return hex.EncodeToString(b)
}

// WithSessionID returns a new context with the given session ID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// NewSessionContext derives a context carrying a freshly generated session ID.
func NewSessionContext(parent context.Context) context.Context {
	return WithSessionID(parent, GenerateSessionID())
}

// SessionIDFromContext extracts the session ID from the context.
// Returns empty string if no session ID is set.
func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// LoggerFromContext returns a logger with the session ID from context.
// If no session ID is in the context, returns the default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := Logger()
	if sessionID := SessionIDFromContext(ctx); sessionID != "" {
		logger = logger.With(KeySessionID, sessionID)
	}
	return logger
}
