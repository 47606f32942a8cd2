package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	RateLimitRPS    float64       `mapstructure:"rate_limit_rps"`
	RateLimitBurst  int           `mapstructure:"rate_limit_burst"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func (config ServerConfig) validate() error {
	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("invalid variable: server port")
	}
	if config.RateLimitRPS <= 0 {
		return fmt.Errorf("invalid variable: rate limit rps")
	}
	return nil
}

func (config ServerConfig) bindEnvironmentVariables() error {

	err := viper.BindEnv("server.port", "SERVER_PORT")
	if err != nil {
		return err
	}

	err = viper.BindEnv("server.rate_limit_rps", "RATE_LIMIT_RPS")
	if err != nil {
		return err
	}

	return viper.BindEnv("server.rate_limit_burst", "RATE_LIMIT_BURST")
}
