package testsupport

import (
	"path/filepath"
	"testing"

	"cardgallery/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.CatalogPath = filepath.Join(base, "data", "catalog.db")

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

// WithCatalogEnabled turns on recording of every rendered batch.
func WithCatalogEnabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Catalog.Enabled = true
	}
}

// WithWorkers overrides the batch render concurrency.
func WithWorkers(workers int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Render.Workers = workers
	}
}

// WithDefaultExtension overrides the image extension left implicit in output.
func WithDefaultExtension(ext string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Render.DefaultExtension = ext
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LogDir)
}
