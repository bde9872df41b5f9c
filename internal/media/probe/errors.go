package probe

import "errors"

var (
	// ErrFileNotFound means the media path does not name an existing file.
	ErrFileNotFound = errors.New("media file not found")
	// ErrBackendUnavailable means no backend executable could be resolved.
	ErrBackendUnavailable = errors.New("no usable backend")
	// ErrUnknownBackend means the backend's name matches no supported program.
	ErrUnknownBackend = errors.New("unknown backend")
	// ErrBackendFailed means the backend could not be run or exited unsuccessfully.
	ErrBackendFailed = errors.New("backend failed")
	// ErrTimeout means the backend did not finish within the configured limit.
	ErrTimeout = errors.New("backend timed out")
	// ErrMalformedOutput means the backend's output could not be decoded.
	ErrMalformedOutput = errors.New("malformed backend output")
)
