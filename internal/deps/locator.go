package deps

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrNotFound reports that no executable matched a lookup.
var ErrNotFound = errors.New("executable not found")

// PathLocator resolves program names against an ordered list of directories.
// It never consults the process environment after construction.
type PathLocator struct {
	dirs []string
}

// NewPathLocator searches extra first, then every entry of pathList
// (an OS-specific list such as $PATH).
func NewPathLocator(pathList string, extra ...string) *PathLocator {
	seen := make(map[string]struct{})
	dirs := make([]string, 0, len(extra)+8)
	for _, dir := range append(append([]string(nil), extra...), filepath.SplitList(pathList)...) {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	return &PathLocator{dirs: dirs}
}

// EnvLocator searches extra first, then $PATH.
func EnvLocator(extra ...string) *PathLocator {
	return NewPathLocator(os.Getenv("PATH"), extra...)
}

// Dirs returns the search directories in order.
func (l *PathLocator) Dirs() []string {
	return append([]string(nil), l.dirs...)
}

// Lookup resolves a single program. Names containing a path separator are
// checked directly instead of searched.
func (l *PathLocator) Lookup(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("lookup: %w", ErrNotFound)
	}
	if strings.ContainsRune(name, os.PathSeparator) || strings.ContainsRune(name, '/') {
		if IsExecutable(name) {
			return name, nil
		}
		return "", fmt.Errorf("lookup %s: %w", name, ErrNotFound)
	}
	for _, dir := range l.dirs {
		if found, ok := probeDir(dir, name); ok {
			return found, nil
		}
	}
	return "", fmt.Errorf("lookup %s: %w", name, ErrNotFound)
}

// Locate returns every executable matching names, grouped by name in the
// order given and by directory order within a name.
func (l *PathLocator) Locate(names ...string) []string {
	var found []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		for _, dir := range l.dirs {
			if path, ok := probeDir(dir, name); ok {
				found = append(found, path)
			}
		}
	}
	return found
}

func probeDir(dir, name string) (string, bool) {
	for _, candidate := range executableNames(name) {
		path := filepath.Join(dir, candidate)
		if IsExecutable(path) {
			return path, true
		}
	}
	return "", false
}

func executableNames(name string) []string {
	if runtime.GOOS == "windows" && !strings.EqualFold(filepath.Ext(name), ".exe") {
		return []string{name + ".exe", name}
	}
	return []string{name}
}
