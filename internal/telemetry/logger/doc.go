// Package logger is the structured logger of unityvault, built on log/slog.
//
// Records go to stderr, text by default, so they never interleave with
// the REPL on stdout. The level is shared by all loggers and can be
// changed at runtime with SetLevel. Values under content or draft keys
// are redacted before they are written.
package logger
