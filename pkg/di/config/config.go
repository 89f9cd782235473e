package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct{}

// New loads config.yaml from the working directory into viper. A missing
// file is fine; every setting has a default.
func New() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return &Config{}, nil
		}
		return nil, err
	}

	return &Config{}, nil
}
