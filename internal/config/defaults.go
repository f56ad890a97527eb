package config

const (
	defaultConfigPath      = "~/.config/cardgallery/config.toml"
	defaultProjectConfig   = "cardgallery.toml"
	defaultLogDir          = "~/.local/share/cardgallery/logs"
	defaultCatalogPath     = "~/.local/share/cardgallery/catalog.db"
	defaultRenderExtension = "png"
	defaultRenderWorkers   = 4
	defaultRenderKind      = "card"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultHistoryLimit    = 20
	maxRenderWorkers       = 64
	envLogLevel            = "CARDGALLERY_LOG_LEVEL"
	envCatalogPath         = "CARDGALLERY_CATALOG_PATH"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:      defaultLogDir,
			CatalogPath: defaultCatalogPath,
		},
		Render: Render{
			DefaultExtension: defaultRenderExtension,
			Workers:          defaultRenderWorkers,
			Kind:             defaultRenderKind,
		},
		Catalog: Catalog{
			HistoryLimit: defaultHistoryLimit,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
