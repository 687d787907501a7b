package config

import (
	"github.com/tronicboy1/sql-paginatorr/internal/logger"
)

type Config struct {
	App    AppConfig           `mapstructure:"app"`
	Server ServerConfig        `mapstructure:"server"`
	Logger logger.LoggerConfig `mapstructure:"logger"`
	Paging PagingConfig        `mapstructure:"paging"`
}

type AppConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env" validate:"oneof=dev test staging prod"`
}

// ServerConfig holds HTTP listener settings. Durations are in seconds.
type ServerConfig struct {
	Port            int `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout     int `mapstructure:"read_timeout" validate:"gte=0"`
	WriteTimeout    int `mapstructure:"write_timeout" validate:"gte=0"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout" validate:"gte=1"`
}

// PagingConfig bounds what a single request may ask of the partitioner.
type PagingConfig struct {
	// MaxPairs caps total/chunk_size for one chunks request.
	MaxPairs uint `mapstructure:"max_pairs" validate:"gte=1"`
	// DefaultPageSize applies when a page request omits page_size.
	DefaultPageSize uint `mapstructure:"default_page_size" validate:"gte=1"`
}
