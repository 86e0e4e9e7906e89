// Package slog provides log/slog decorators for distill services.
// Each decorator logs one record per call and otherwise delegates.
package slog
