// Package logging assembles structured slog loggers used across mediaprobe.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so every log line emitted during a
// probe carries the same probe ID. A no-op logger is provided for tests and
// for wiring code that runs before configuration is loaded.
package logging
