// Package logging assembles the structured slog loggers used across signdex.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes attr helpers so pipeline code logs fields with a
// consistent shape. Prefer these constructors over hand-rolled slog setup.
package logging
