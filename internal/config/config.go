package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	UI      UIConfig      `mapstructure:"ui"`
	Search  SearchConfig  `mapstructure:"search"`
	Display DisplayConfig `mapstructure:"display"`
	Export  ExportConfig  `mapstructure:"export"`
}

type DataConfig struct {
	Path  string `mapstructure:"path"`
	Watch bool   `mapstructure:"watch"`
}

type UIConfig struct {
	Theme           string `mapstructure:"theme"`
	MouseEnabled    bool   `mapstructure:"mouse_enabled"`
	PanelWidthRatio int    `mapstructure:"panel_width_ratio"`
}

type SearchConfig struct {
	DebounceMs int `mapstructure:"debounce_ms"`
}

type DisplayConfig struct {
	MaxCards int `mapstructure:"max_cards"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// GetDefaults returns a Config with all default values
func GetDefaults() *Config {
	return &Config{
		Data: DataConfig{
			Path:  "data.json",
			Watch: true,
		},
		UI: UIConfig{
			Theme:           "default",
			MouseEnabled:    true,
			PanelWidthRatio: 30,
		},
		Search: SearchConfig{
			DebounceMs: 300,
		},
		Display: DisplayConfig{
			MaxCards: 100,
		},
		Export: ExportConfig{
			Dir: ".",
		},
	}
}

// Load loads configuration from files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and type
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths in priority order
	// 1. User config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "lazydeck"))
	}

	// 2. Current directory
	v.AddConfigPath(".")

	// 3. Default config directory
	v.AddConfigPath("./config")

	v.SetDefault("data.path", "data.json")
	v.SetDefault("data.watch", true)
	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.mouse_enabled", true)
	v.SetDefault("ui.panel_width_ratio", 30)
	v.SetDefault("search.debounce_ms", 300)
	v.SetDefault("display.max_cards", 100)
	v.SetDefault("export.dir", ".")

	// Read config (it's okay if file doesn't exist, we have defaults)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	// Unmarshal into struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// GetConfigPath returns the user config directory path
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "lazydeck"), nil
}
