package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const (
	requestIDKey    ctxKey = "request_id"
	submissionIDKey ctxKey = "submission_id"
	chainKeyKey     ctxKey = "chain_key"
)

// WithRequestID returns a context whose logs carry the given request id
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithSubmissionID returns a context whose logs carry the given transaction submission id
func WithSubmissionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, submissionIDKey, id)
}

// WithChainKey returns a context whose logs carry the network the request targets
func WithChainKey(ctx context.Context, chainKey string) context.Context {
	return context.WithValue(ctx, chainKeyKey, chainKey)
}

// RequestID returns the request id stored in ctx, if any
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func fieldsFromContext(ctx context.Context) []zap.Field {
	var fields []zap.Field
	for _, key := range []ctxKey{requestIDKey, submissionIDKey, chainKeyKey} {
		if v, ok := ctx.Value(key).(string); ok && v != "" {
			fields = append(fields, zap.String(string(key), v))
		}
	}
	return fields
}
