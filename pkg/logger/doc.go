// Package logger builds the structured slog.Logger used by the login kit's
// coordinator and CLI.
//
// New returns a *slog.Logger configured by Option functions (format, level,
// output, static attributes) and wrapped in a handler decorator that copies
// request-scoped values from the context onto every record. The submission id
// stored with WithSubmissionID is always extracted; further values can be
// registered with WithContextExtractors.
//
//	log := logger.New(logger.WithDevelopment("loginkit"))
//	ctx := logger.WithSubmissionID(ctx, uuid.NewString())
//	log.DebugContext(ctx, "submit rejected", logger.Fields(failed...), logger.Codes(codes...))
//
// Attribute helpers in attr.go keep key names consistent. None of them accept
// raw field values: form input is never logged.
//
// Nop returns a logger that discards everything; packages use it as their
// default so logging stays opt-in.
package logger
