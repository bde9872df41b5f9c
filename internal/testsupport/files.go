package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"mediaprobe/internal/config"
)

// WriteFile creates path, including parent directories, and fills it with
// size bytes of filler. Backends are stubbed in tests, so the content only has
// to exist. A size <= 0 writes a single byte.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 251)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteReport saves captured backend output next to the test config so it
// can be replayed through the parse command.
func WriteReport(t testing.TB, cfg *config.Config, name, content string) string {
	t.Helper()
	path := filepath.Join(BaseDir(cfg), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write report %s: %v", name, err)
	}
	return path
}
