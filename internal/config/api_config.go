package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type APIConfig struct {
	PageSize int `mapstructure:"page_size"`
}

func (config APIConfig) validate() error {
	if config.PageSize <= 0 {
		return fmt.Errorf("invalid variable: api page size")
	}
	return nil
}

func (config APIConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("api.page_size", "API_PAGE_SIZE")
}
