// Package ffprobe turns ffprobe JSON reports into unified media records.
//
// This package has no mediaprobe-specific dependencies beyond the record
// package and never spawns processes; callers run ffprobe with Args and hand
// the output to Normalize.
//
// Key types:
//   - Result: decoded ffprobe output containing streams, format, and error
//   - Stream: individual audio/video stream properties
//   - Format: container-level metadata (name, duration, size, bitrate)
//   - Value: a scalar that ffprobe may emit as a string or a number
//
// Durations are passed through as reported: ffprobe already expresses them in
// seconds.
package ffprobe
