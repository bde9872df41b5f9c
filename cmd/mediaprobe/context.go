package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"mediaprobe/internal/config"
	"mediaprobe/internal/deps"
	"mediaprobe/internal/logging"
	"mediaprobe/internal/media/probe"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(c.configFlagValue())
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil {
			if level := strings.TrimSpace(*c.logLevelFlag); level != "" {
				cfg.Logging.Level = strings.ToLower(level)
				if err := cfg.Validate(); err != nil {
					c.configErr = err
					return
				}
			}
		}
		c.config = cfg
		c.configPath = path
		c.configSeen = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) configFlagValue() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// locator searches the configured directories first, then $PATH.
func (c *commandContext) locator() *deps.PathLocator {
	var extra []string
	if c.config != nil {
		extra = c.config.Backend.SearchPaths
	}
	return deps.EnvLocator(extra...)
}

// proberOverrides carries per-invocation flag values. Zero values keep the
// configured setting.
type proberOverrides struct {
	backend    string
	mode       string
	timeout    time.Duration
	timeoutSet bool
}

func (c *commandContext) newProber(overrides proberOverrides) (*probe.Prober, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	settings, err := probe.ConfigFrom(cfg)
	if err != nil {
		return nil, err
	}
	if backend := strings.TrimSpace(overrides.backend); backend != "" {
		if strings.ContainsAny(backend, `/\`) || strings.HasPrefix(backend, "~") {
			if backend, err = config.ExpandPath(backend); err != nil {
				return nil, fmt.Errorf("resolve backend path: %w", err)
			}
		}
		settings.BackendPath = backend
	}
	if strings.TrimSpace(overrides.mode) != "" {
		if settings.Mode, err = probe.ParseMode(overrides.mode); err != nil {
			return nil, err
		}
	}
	if overrides.timeoutSet {
		settings.Timeout = overrides.timeout
	}

	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return probe.New(settings, probe.WithLocator(c.locator()), probe.WithLogger(logger)), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
