package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeRender()
	c.normalizeCatalog()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if value, ok := os.LookupEnv(envCatalogPath); ok && strings.TrimSpace(value) != "" {
		c.Paths.CatalogPath = value
	}
	if strings.TrimSpace(c.Paths.CatalogPath) == "" {
		c.Paths.CatalogPath = defaultCatalogPath
	}
	if c.Paths.CatalogPath, err = expandPath(strings.TrimSpace(c.Paths.CatalogPath)); err != nil {
		return fmt.Errorf("paths.catalog_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeRender() {
	ext := strings.TrimSpace(c.Render.DefaultExtension)
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = defaultRenderExtension
	}
	c.Render.DefaultExtension = ext
	if c.Render.Workers <= 0 {
		c.Render.Workers = defaultRenderWorkers
	}
	c.Render.Kind = strings.ToLower(strings.TrimSpace(c.Render.Kind))
	if c.Render.Kind == "" {
		c.Render.Kind = defaultRenderKind
	}
}

func (c *Config) normalizeCatalog() {
	if c.Catalog.HistoryLimit <= 0 {
		c.Catalog.HistoryLimit = defaultHistoryLimit
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := os.LookupEnv(envLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
