package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "sql-paginator")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.env", "prod")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 5)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.shutdown_timeout", 10)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "prod")

	v.SetDefault("paging.max_pairs", 10000)
	v.SetDefault("paging.default_page_size", 50)
}

// Load reads the YAML file at path and applies APP_* environment overrides
// (APP_SERVER_PORT, APP_PAGING_MAX_PAIRS, ...). An empty path or a missing
// file falls back to defaults plus environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&config.App); err != nil {
		return nil, fmt.Errorf("invalid app config: %w", err)
	}
	if err := validate.Struct(&config.Server); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}
	if err := validate.Struct(&config.Paging); err != nil {
		return nil, fmt.Errorf("invalid paging config: %w", err)
	}
	// logger.New validates its own section after applying defaults.

	return &config, nil
}
