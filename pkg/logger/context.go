package logger

import (
	"context"
	"log/slog"
)

type submissionIDKey struct{}

// WithSubmissionID stores the id of the submit attempt being processed.
func WithSubmissionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, submissionIDKey{}, id)
}

// SubmissionIDFromContext returns the id stored by WithSubmissionID.
func SubmissionIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(submissionIDKey{}).(string)
	return id, ok && id != ""
}

func submissionIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id, ok := SubmissionIDFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return SubmissionID(id), true
}
