package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.applyEnv()
	if err := c.normalizeBackend(); err != nil {
		return err
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.Output.Format = lowerOr(c.Output.Format, defaultOutputFormat)
	return nil
}

func (c *Config) applyEnv() {
	if value, ok := os.LookupEnv(EnvBackend); ok && strings.TrimSpace(value) != "" {
		c.Backend.Path = value
	}
	if value, ok := os.LookupEnv(EnvBackendMode); ok && strings.TrimSpace(value) != "" {
		c.Backend.Mode = value
	}
}

func (c *Config) normalizeBackend() error {
	var err error
	c.Backend.Path = strings.TrimSpace(c.Backend.Path)
	// Bare program names are resolved against the search path later; only
	// paths with a directory component are expanded here.
	if strings.ContainsAny(c.Backend.Path, `/\`) || strings.HasPrefix(c.Backend.Path, "~") {
		if c.Backend.Path, err = expandPath(c.Backend.Path); err != nil {
			return fmt.Errorf("backend.path: %w", err)
		}
	}
	c.Backend.Mode = lowerOr(c.Backend.Mode, defaultBackendMode)

	dirs := make([]string, 0, len(c.Backend.SearchPaths))
	for _, dir := range c.Backend.SearchPaths {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		expanded, err := expandPath(dir)
		if err != nil {
			return fmt.Errorf("backend.search_paths: %w", err)
		}
		dirs = append(dirs, expanded)
	}
	c.Backend.SearchPaths = dirs
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = lowerOr(c.Logging.Format, defaultLogFormat)
	if c.Logging.Format == "pretty" || c.Logging.Format == "text" {
		c.Logging.Format = "console"
	}
	c.Logging.Level = lowerOr(c.Logging.Level, defaultLogLevel)
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File != "" {
		var err error
		if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	return nil
}

func lowerOr(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}
