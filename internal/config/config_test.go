package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"mediaprobe/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvBackend, "")
	t.Setenv(config.EnvBackendMode, "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(home, ".config", "mediaprobe", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.Backend.Mode != config.ModeAuto {
		t.Fatalf("unexpected mode: %q", cfg.Backend.Mode)
	}
	if cfg.Backend.Path != "" {
		t.Fatalf("expected no explicit backend, got %q", cfg.Backend.Path)
	}
	if cfg.Timeout() != 120*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.Timeout())
	}
	if !cfg.FFprobe.CountFrames || !cfg.MediaInfo.RelativePath {
		t.Fatalf("expected invocation defaults to be enabled: %+v", cfg)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Output.Format != config.OutputAuto {
		t.Fatalf("unexpected output format: %q", cfg.Output.Format)
	}
}

func TestLoadCustomPath(t *testing.T) {
	home := isolate(t)
	configPath := filepath.Join(t.TempDir(), "mediaprobe.toml")

	type payload struct {
		Backend struct {
			Path           string   `toml:"path"`
			Mode           string   `toml:"mode"`
			TimeoutSeconds int      `toml:"timeout_seconds"`
			SearchPaths    []string `toml:"search_paths"`
		} `toml:"backend"`
		FFprobe struct {
			CountFrames bool `toml:"count_frames"`
		} `toml:"ffprobe"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
			File   string `toml:"file"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Backend.Path = "~/bin/mediainfo"
	custom.Backend.Mode = " MediaInfo "
	custom.Backend.TimeoutSeconds = 5
	custom.Backend.SearchPaths = []string{"~/tools", "  "}
	custom.FFprobe.CountFrames = false
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Warning"
	custom.Logging.File = "~/logs/mediaprobe.log"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Backend.Path != filepath.Join(home, "bin", "mediainfo") {
		t.Fatalf("expected expanded backend path, got %q", cfg.Backend.Path)
	}
	if cfg.Backend.Mode != config.ModeMediaInfo {
		t.Fatalf("expected normalized mode, got %q", cfg.Backend.Mode)
	}
	if cfg.Timeout() != 5*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.Timeout())
	}
	if len(cfg.Backend.SearchPaths) != 1 || cfg.Backend.SearchPaths[0] != filepath.Join(home, "tools") {
		t.Fatalf("unexpected search paths: %v", cfg.Backend.SearchPaths)
	}
	if cfg.FFprobe.CountFrames {
		t.Fatal("expected count_frames override")
	}
	if !cfg.MediaInfo.RelativePath {
		t.Fatal("expected untouched section to keep its default")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
	if cfg.Logging.File != filepath.Join(home, "logs", "mediaprobe.log") {
		t.Fatalf("unexpected log file: %q", cfg.Logging.File)
	}
}

func TestLoadBareBackendNameIsNotExpanded(t *testing.T) {
	isolate(t)
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[backend]\npath = \"ffprobe\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Backend.Path != "ffprobe" {
		t.Fatalf("expected bare name to be preserved, got %q", cfg.Backend.Path)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvBackend, "/opt/media/bin/ffprobe")
	t.Setenv(config.EnvBackendMode, "ffprobe")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Backend.Path != "/opt/media/bin/ffprobe" {
		t.Fatalf("expected env backend path, got %q", cfg.Backend.Path)
	}
	if cfg.Backend.Mode != config.ModeFFprobe {
		t.Fatalf("expected env mode, got %q", cfg.Backend.Mode)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"mode":          "[backend]\nmode = \"exiftool\"\n",
		"timeout":       "[backend]\ntimeout_seconds = -1\n",
		"log format":    "[logging]\nformat = \"xml\"\n",
		"log level":     "[logging]\nlevel = \"trace\"\n",
		"output format": "[output]\nformat = \"yaml\"\n",
		"unknown key":   "[backend]\nbinary = \"ffprobe\"\n",
		"syntax":        "[backend\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			configPath := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(configPath); err == nil {
				t.Fatalf("expected error for %q", body)
			}
		})
	}
}

func TestSampleConfigLoads(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	def := config.Default()
	if cfg.Backend.Mode != def.Backend.Mode || cfg.Backend.TimeoutSeconds != def.Backend.TimeoutSeconds {
		t.Fatalf("sample diverges from defaults: %+v", cfg.Backend)
	}
	if cfg.FFprobe != def.FFprobe || cfg.MediaInfo != def.MediaInfo || cfg.Output != def.Output {
		t.Fatalf("sample diverges from defaults: %+v", cfg)
	}
}

func TestEncodeRoundTrips(t *testing.T) {
	cfg := config.Default()
	cfg.Backend.Path = "/usr/bin/mediainfo"
	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if !strings.Contains(string(data), "[backend]") {
		t.Fatalf("expected backend table, got %s", data)
	}
	decoded := config.Default()
	if err := config.Decode(data, &decoded); err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if decoded.Backend.Path != cfg.Backend.Path {
		t.Fatalf("unexpected backend path: %q", decoded.Backend.Path)
	}
}
