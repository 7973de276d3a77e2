package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Global settings
	Debug   bool   `mapstructure:"debug"`
	Display string `mapstructure:"display"`

	// Recompile settings used before a respawn
	Build BuildConfig `mapstructure:"build"`

	// Restart behavior
	Restart RestartConfig `mapstructure:"restart"`
}

// BuildConfig describes how the running program is rebuilt from source
type BuildConfig struct {
	Tool        string   `mapstructure:"tool"`
	Dir         string   `mapstructure:"dir"`
	Collections []string `mapstructure:"collections"`
}

// RestartConfig controls the respawn flow
type RestartConfig struct {
	Recompile bool `mapstructure:"recompile"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Debug:   false,
		Display: "",
		Build: BuildConfig{
			Tool:        "go",
			Collections: []string{"./..."},
		},
		Restart: RestartConfig{
			Recompile: true,
		},
	}
}

// Load loads configuration from files and environment
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("rwind")
	v.SetConfigType("yaml")

	// Config paths in order of precedence, lowest first
	v.AddConfigPath("/etc/rwind/")
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "rwind"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigName(".rwind")
	}
	v.AddConfigPath(".")

	// Environment variables
	v.SetEnvPrefix("RWIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.BindEnv("debug", "RWIND_DEBUG")
	v.BindEnv("display", "RWIND_DISPLAY")
	v.BindEnv("build.tool", "RWIND_BUILD_TOOL")
	v.BindEnv("build.dir", "RWIND_BUILD_DIR")

	// Set defaults
	cfg := Default()
	v.SetDefault("debug", cfg.Debug)
	v.SetDefault("display", cfg.Display)
	v.SetDefault("build.tool", cfg.Build.Tool)
	v.SetDefault("build.dir", cfg.Build.Dir)
	v.SetDefault("build.collections", cfg.Build.Collections)
	v.SetDefault("restart.recompile", cfg.Restart.Recompile)

	// Try to read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error occurred
			return nil, err
		}
		// Config file not found; use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigFile returns the path to the config file that was loaded
func ConfigFile() string {
	v := viper.New()

	v.SetConfigName("rwind")
	v.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err == nil {
		return v.ConfigFileUsed()
	}

	// Try .rwind
	v.SetConfigName(".rwind")
	if err := v.ReadInConfig(); err == nil {
		return v.ConfigFileUsed()
	}

	return ""
}
