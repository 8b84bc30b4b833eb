package logger

import (
	"log/slog"
	"strings"
)

// Error records err under "error". Nil errors produce an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting component under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a field id under "field".
func Field(id string) slog.Attr {
	return slog.String("field", id)
}

// Fields records field ids under "fields".
func Fields(ids ...string) slog.Attr {
	return slog.String("fields", strings.Join(ids, ","))
}

// Codes records validation codes under "codes".
func Codes[T ~string](codes ...T) slog.Attr {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = string(c)
	}
	return slog.String("codes", strings.Join(parts, ","))
}

// SubmissionID records a submit attempt id under "submission_id".
func SubmissionID(id string) slog.Attr {
	return slog.String("submission_id", id)
}

// State records a lifecycle state under "state".
func State[T ~string](s T) slog.Attr {
	return slog.String("state", string(s))
}

// Variant records the rule catalog variant under "variant".
func Variant[T ~string](v T) slog.Attr {
	return slog.String("variant", string(v))
}
