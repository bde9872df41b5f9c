package probe

import (
	"fmt"
	"path/filepath"
	"strings"

	"mediaprobe/internal/deps"
)

// Kind identifies the output format a backend produces.
type Kind int

const (
	KindUnknown Kind = iota
	KindFFprobe
	KindMediaInfo
)

func (k Kind) String() string {
	switch k {
	case KindFFprobe:
		return "ffprobe"
	case KindMediaInfo:
		return "mediainfo"
	default:
		return "unknown"
	}
}

// KindFor classifies a backend by its base name. Case and a trailing .exe
// are ignored.
func KindFor(path string) Kind {
	name := strings.ToLower(filepath.Base(strings.TrimSpace(path)))
	name = strings.TrimSuffix(name, ".exe")
	switch name {
	case "ffprobe":
		return KindFFprobe
	case "mediainfo":
		return KindMediaInfo
	default:
		return KindUnknown
	}
}

// ParseKind maps a format name such as "ffprobe" or "json" onto a Kind.
func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ffprobe", "json":
		return KindFFprobe, nil
	case "mediainfo", "text":
		return KindMediaInfo, nil
	default:
		return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownBackend, value)
	}
}

// Mode restricts which backends automatic discovery considers.
type Mode string

const (
	ModeAuto      Mode = "auto"
	ModeFFprobe   Mode = "ffprobe"
	ModeMediaInfo Mode = "mediainfo"
)

// ParseMode normalizes a mode name. An empty value means ModeAuto.
func ParseMode(value string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeFFprobe, ModeMediaInfo:
		return mode, nil
	default:
		return "", fmt.Errorf("backend mode must be auto, ffprobe, or mediainfo (got %q)", value)
	}
}

// CandidateNames lists the program names searched for in preference order.
func (m Mode) CandidateNames() []string {
	switch m {
	case ModeFFprobe:
		return []string{"ffprobe"}
	case ModeMediaInfo:
		return []string{"mediainfo"}
	default:
		return []string{"ffprobe", "mediainfo"}
	}
}

// Locator returns executable paths matching names, most preferred first.
type Locator interface {
	Locate(names ...string) []string
}

// Backend is a resolved backend executable.
type Backend struct {
	Kind Kind
	Path string
}

// Select resolves the backend to run. An explicit path wins over mode; a bare
// program name is searched with locator. The returned path is absolute so it
// stays valid when the child runs in another directory.
func Select(explicit string, mode Mode, locator Locator) (Backend, error) {
	explicit = strings.TrimSpace(explicit)
	if explicit != "" {
		path := explicit
		if !strings.ContainsAny(explicit, `/\`) {
			found := locate(locator, explicit)
			if len(found) == 0 {
				return Backend{}, fmt.Errorf("%w: %q not found in search path", ErrBackendUnavailable, explicit)
			}
			path = found[0]
		}
		return resolve(path)
	}

	names := mode.CandidateNames()
	found := locate(locator, names...)
	if len(found) == 0 {
		return Backend{}, fmt.Errorf("%w: none of %s found in search path", ErrBackendUnavailable, strings.Join(names, ", "))
	}
	return resolve(found[0])
}

func locate(locator Locator, names ...string) []string {
	if locator == nil {
		return nil
	}
	return locator.Locate(names...)
}

func resolve(path string) (Backend, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Backend{}, fmt.Errorf("%w: resolve %s: %w", ErrBackendUnavailable, path, err)
	}
	if !deps.IsExecutable(abs) {
		return Backend{}, fmt.Errorf("%w: %s is missing or not executable", ErrBackendUnavailable, abs)
	}
	return Backend{Kind: KindFor(abs), Path: abs}, nil
}
