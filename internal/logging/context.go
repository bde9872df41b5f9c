package logging

import (
	"context"
	"log/slog"
	"strings"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldProbeID is the standardized structured logging key for per-probe correlation IDs.
	FieldProbeID = "probe_id"
	// FieldBackend is the standardized structured logging key for the backend kind.
	FieldBackend = "backend"
	// FieldPath is the standardized structured logging key for the probed media path.
	FieldPath = "path"
	// FieldError is the standardized structured logging key for errors.
	FieldError = "error"
)

type probeIDKey struct{}

// WithProbeID stores a probe correlation ID on the context.
func WithProbeID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, probeIDKey{}, id)
}

// ProbeIDFromContext returns the probe correlation ID, if any.
func ProbeIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(probeIDKey{}).(string)
	return id, ok && id != ""
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	var fields []slog.Attr
	if id, ok := ProbeIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldProbeID, id))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
