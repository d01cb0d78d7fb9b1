// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/reel/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // Logger config under [logger] table
	Engine EngineConfig  `toml:"engine"` // Engine-specific settings
}

// EngineConfig holds replay-engine settings.
type EngineConfig struct {
	DisplayBase     int  `toml:"display_base"`     // Offset for the physical caret form
	TabWidth        int  `toml:"tab_width"`        // Visual width of '\t' in projected frames
	SystemClipboard bool `toml:"system_clipboard"` // Mirror copy-selection to the OS clipboard
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Engine: EngineConfig{
			DisplayBase:     DefaultDisplayBase,
			TabWidth:        DefaultTabWidth,
			SystemClipboard: SystemClipboard,
		},
	}
}

// loadFromFile attempts to load configuration from a TOML file. A missing
// file is not an error; the defaults stand.
func loadFromFile(filePath string, cfg *Config) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, undecoded)
	}
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Engine.DisplayBase < 0 {
		c.Engine.DisplayBase = defaults.Engine.DisplayBase
	}
	if c.Engine.TabWidth <= 0 {
		c.Engine.TabWidth = defaults.Engine.TabWidth
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// LoadConfig loads defaults, merges the TOML file and flag overrides, and
// validates the result. Called once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		cfg := NewDefaultConfig()

		effectivePath := configFilePath
		if effectivePath == "" {
			if configDir, err := os.UserConfigDir(); err == nil {
				effectivePath = filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
			}
		}

		if effectivePath != "" {
			if err := loadFromFile(effectivePath, cfg); err != nil {
				loadErr = err
				loadedConfig = cfg
				return
			}
		}

		if flags != nil {
			flags.ApplyOverrides(cfg)
		}

		cfg.validate()
		loadedConfig = cfg
	})
	return loadedConfig, loadErr
}
