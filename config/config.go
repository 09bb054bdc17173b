package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mcuadros/go-defaults"
	"github.com/spf13/viper"
)

type Config struct {
	ServerHost      string `mapstructure:"SERVER_HOST" default:"0.0.0.0"`
	ServerPort      string `mapstructure:"SERVER_PORT" default:"8080"`
	LogLevel        string `mapstructure:"LOG_LEVEL" default:"info"`
	StatsdAddress   string `mapstructure:"STATSD_ADDRESS" default:"127.0.0.1:8125"`
	StatsdPrefix    string `mapstructure:"STATSD_PREFIX" default:"dataRoster"`
	StatsdEnabled   bool   `mapstructure:"STATSD_ENABLED" default:"false"`
	CatalogPageSize int    `mapstructure:"CATALOG_PAGE_SIZE" default:"100"`
	ScanLatestOnly  bool   `mapstructure:"SCAN_LATEST_ONLY" default:"false"`
	CORSEnabled     bool   `mapstructure:"CORS_ENABLED" default:"true"`
}

// LoadConfig returns the application configuration from an optional yaml
// file, overridable via environment variables.
func LoadConfig() (Config, error) {
	var config Config

	viper.SetConfigName("config")
	viper.AddConfigPath("./")
	viper.AddConfigPath("../")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, err
		}
		// no config file; env vars and defaults apply
	}

	defaults.SetDefaults(&config)

	if err := viper.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("unable to unmarshal config to struct: %w", err)
	}

	return config, nil
}
