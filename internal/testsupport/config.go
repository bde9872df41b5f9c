package testsupport

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"mediaprobe/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a unique temp directory per test.
// Backend discovery is confined to BinDir so the host's ffprobe or mediainfo
// never leaks into a test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	binDir := filepath.Join(base, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir bin dir: %v", err)
	}
	t.Setenv("PATH", "")
	t.Setenv(config.EnvBackend, "")
	t.Setenv(config.EnvBackendMode, "")

	cfgVal := config.Default()
	cfgVal.Backend.SearchPaths = []string{binDir}
	cfgVal.Logging.File = filepath.Join(base, "logs", "mediaprobe.log")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithStubbedBackends writes stub executables for the provided names into
// BinDir. If names is empty, both ffprobe and mediainfo are stubbed.
func WithStubbedBackends(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"ffprobe", "mediainfo"}
		}
		for _, name := range names {
			WriteBackend(b.t, filepath.Join(b.baseDir, "bin"), name, "")
		}
	}
}

// WithBackendScript writes an executable shell script named name into
// BinDir. The script stands in for a real backend.
func WithBackendScript(name, script string) ConfigOption {
	return func(b *configBuilder) {
		WriteBackend(b.t, filepath.Join(b.baseDir, "bin"), name, script)
	}
}

// WithMode sets the backend discovery mode.
func WithMode(mode string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Backend.Mode = mode
	}
}

// WriteBackend writes an executable named name into dir and returns its path.
// An empty script produces a program that exits successfully without output.
func WriteBackend(t testing.TB, dir, name, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	if script == "" {
		script = "#!/bin/sh\nexit 0\n"
	}
	target := filepath.Join(dir, name)
	if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return target
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(BinDir(cfg))
}

// BinDir returns the directory stub backends are written to.
func BinDir(cfg *config.Config) string {
	return cfg.Backend.SearchPaths[0]
}

// WriteConfig encodes cfg as TOML at base/config.toml and returns the path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()
	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	path := filepath.Join(BaseDir(cfg), "config.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
