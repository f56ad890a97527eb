package services

import "context"

type contextKey string

const (
	entryIndexKey contextKey = "entry_index"
	commandKey    contextKey = "command"
	requestIDKey  contextKey = "request_id"
)

// WithEntryIndex annotates context with the zero-based position of a gallery
// entry within its batch.
func WithEntryIndex(ctx context.Context, index int) context.Context {
	return context.WithValue(ctx, entryIndexKey, index)
}

// EntryIndexFromContext extracts the batch entry index if present.
func EntryIndexFromContext(ctx context.Context) (int, bool) {
	v := ctx.Value(entryIndexKey)
	if v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	default:
		return 0, false
	}
}

// WithCommand annotates context with the CLI command name.
func WithCommand(ctx context.Context, command string) context.Context {
	if command == "" {
		return ctx
	}
	return context.WithValue(ctx, commandKey, command)
}

// CommandFromContext returns the command name if present.
func CommandFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(commandKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
