package main

import (
	"snuffle-go/pkg/appdir"

	"github.com/spf13/viper"
)

// Config holds the defaults that command flags can override.
type Config struct {
	Variant   string `mapstructure:"variant"`
	KeyFormat string `mapstructure:"key_format"`
	Key       string `mapstructure:"key"`
	Nonce     string `mapstructure:"nonce"`
	LogLevel  string `mapstructure:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Variant:   "chacha20",
		KeyFormat: "hex",
		Nonce:     "0000000000000000",
		LogLevel:  "info",
	}
}

// LoadConfig loads configuration from file and environment, in that
// order of precedence; command-line flags override both.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("snuffle")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(appdir.AppDir())
	viper.SetEnvPrefix("SNUFFLE") // SNUFFLE_KEY, SNUFFLE_VARIANT, ...
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// No config file is fine; defaults and environment apply.
	}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
