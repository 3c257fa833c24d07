// Package config loads the modsym command configuration with viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/f3rmion/modsym/internal/logger"
)

// EnvPrefix prefixes environment overrides, e.g. MODSYM_LOG_LEVEL.
const EnvPrefix = "MODSYM"

// Config is the full command configuration.
type Config struct {
	Log   logger.Config `mapstructure:"log"`
	Cache CacheConfig   `mapstructure:"cache"`
}

// CacheConfig sizes the coset list registry.
type CacheConfig struct {
	Size int `mapstructure:"size"`
}

// SetDefaults installs default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.filename", "")
	v.SetDefault("log.maxsize", 10)
	v.SetDefault("log.maxage", 7)
	v.SetDefault("log.maxbackups", 3)
	v.SetDefault("log.compress", false)
	v.SetDefault("cache.size", 128)
}

// Load reads the configuration into v and decodes it. When file is empty
// modsym.yaml is searched for in the working directory and in
// $HOME/.config/modsym; a missing file is not an error. Environment
// variables override the file.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("modsym")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "modsym"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
