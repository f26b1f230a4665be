package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the resolved application configuration.
type Config struct {
	// Theme name: "dark" (default) or "light".
	Theme string `mapstructure:"theme"`
	// MarketID is the market opened by default.
	MarketID int `mapstructure:"market_id"`
	// APIBaseURL is the root of the market REST API.
	APIBaseURL string `mapstructure:"api_base_url"`
	// ImageBaseURL prefixes relative image paths from the API.
	ImageBaseURL string `mapstructure:"image_base_url"`
	// APITimeout bounds each catalog request.
	APITimeout time.Duration `mapstructure:"api_timeout"`
	// CacheTTL is how long fetched catalogs stay fresh.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	// Offline forces the embedded/local catalog, skipping the network.
	Offline bool `mapstructure:"offline"`
	// CatalogFile is an optional local catalog JSON, hot-reloaded on change.
	CatalogFile string `mapstructure:"catalog_file"`
	// Keys overrides the global key bindings.
	Keys KeyBindings `mapstructure:"keys"`
}

// Load reads configuration from ~/.config/haat/config.yaml (or TOML/JSON).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	configDir := configDirectory()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("HAAT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is fine — use defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("theme", "dark")
	v.SetDefault("market_id", 4532)
	v.SetDefault("api_base_url", "https://user-app-staging.haat.delivery/api")
	v.SetDefault("image_base_url", "https://im-staging.haat.delivery")
	v.SetDefault("api_timeout", "10s")
	v.SetDefault("cache_ttl", "2m")
	v.SetDefault("offline", false)
	v.SetDefault("catalog_file", "")

	kb := DefaultKeyBindings()
	v.SetDefault("keys.quit", kb.Quit)
	v.SetDefault("keys.help", kb.Help)
	v.SetDefault("keys.back", kb.Back)
	v.SetDefault("keys.refresh", kb.Refresh)
}

func configDirectory() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "haat")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "haat")
}

// StateDirectory is where runtime state such as the log file lives.
func StateDirectory() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "haat")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "haat")
}
