package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateBackend(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateOutput()
}

func (c *Config) validateBackend() error {
	switch c.Backend.Mode {
	case ModeAuto, ModeFFprobe, ModeMediaInfo:
	default:
		return fmt.Errorf("backend.mode must be one of auto, ffprobe, mediainfo (got %q)", c.Backend.Mode)
	}
	if c.Backend.TimeoutSeconds < 0 {
		return errors.New("backend.timeout_seconds must be zero (no limit) or positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case OutputAuto, OutputTable, OutputJSON:
		return nil
	default:
		return fmt.Errorf("output.format must be one of auto, table, json (got %q)", c.Output.Format)
	}
}
