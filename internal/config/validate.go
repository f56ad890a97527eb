package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRender(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateRender() error {
	if c.Render.Workers <= 0 {
		return errors.New("render.workers must be positive")
	}
	if c.Render.Workers > maxRenderWorkers {
		return fmt.Errorf("render.workers must be at most %d", maxRenderWorkers)
	}
	if strings.ContainsAny(c.Render.DefaultExtension, "./\\ ") {
		return fmt.Errorf("render.default_extension %q must be a bare extension such as png", c.Render.DefaultExtension)
	}
	switch c.Render.Kind {
	case "card", "set":
	default:
		return fmt.Errorf("render.kind %q must be card or set", c.Render.Kind)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
}
