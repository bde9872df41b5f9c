// Package config loads, normalizes, and validates mediaprobe configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the MEDIAPROBE_BACKEND and MEDIAPROBE_BACKEND_MODE
// environment overrides. Always obtain settings through this package so the
// prober and CLI receive canonical modes and clear validation errors.
package config
