package probe

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"mediaprobe/internal/media/ffprobe"
	"mediaprobe/internal/media/mediainfo"
	"mediaprobe/internal/media/record"
)

// decodeOutput converts backend output to UTF-8. A byte order mark selects
// UTF-16 when present; invalid UTF-8 is replaced rather than rejected.
func decodeOutput(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return nil, fmt.Errorf("decode output: %w", err)
	}
	return out, nil
}

// Normalize maps raw backend output of the given kind onto a record.
// mediainfo text never fails; ffprobe output that cannot be decoded returns
// an empty record and an error wrapping ErrMalformedOutput, or
// ErrBackendFailed when ffprobe reported its own error.
func Normalize(kind Kind, output []byte) (record.Record, error) {
	text, err := decodeOutput(output)
	if err != nil {
		return record.Record{}, fmt.Errorf("%w: %w", ErrMalformedOutput, err)
	}
	switch kind {
	case KindFFprobe:
		rec, err := ffprobe.Normalize(text)
		if err != nil {
			var reported *ffprobe.ReportError
			if errors.As(err, &reported) {
				return record.Record{}, fmt.Errorf("%w: %w", ErrBackendFailed, err)
			}
			return record.Record{}, fmt.Errorf("%w: %w", ErrMalformedOutput, err)
		}
		return rec, nil
	case KindMediaInfo:
		return mediainfo.Parse(string(text)), nil
	default:
		return record.Record{}, fmt.Errorf("%w: %s", ErrUnknownBackend, kind)
	}
}
