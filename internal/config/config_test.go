package config

import (
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {
	override := Config{
		DB:   DBConfig{ConnectionString: "override.db"},
		Auth: AuthConfig{JWTSecret: "overrideSecret"},
		API:  APIConfig{PageSize: 17},
		Server: ServerConfig{
			Port:           9099,
			RateLimitRPS:   55,
			RateLimitBurst: 77,
		},
	}
	os.Setenv("CONFIG_PATH", "../../configs/config.yaml")

	os.Setenv("DB_CONNECTION_STRING", override.DB.ConnectionString)
	os.Setenv("JWT_SECRET", override.Auth.JWTSecret)
	os.Setenv("API_PAGE_SIZE", strconv.Itoa(override.API.PageSize))
	os.Setenv("SERVER_PORT", strconv.Itoa(override.Server.Port))
	os.Setenv("RATE_LIMIT_RPS", "55")
	os.Setenv("RATE_LIMIT_BURST", strconv.Itoa(override.Server.RateLimitBurst))

	cfg := Get()

	assert.Equal(t, override.DB.ConnectionString, cfg.DB.ConnectionString)
	assert.Equal(t, override.Auth.JWTSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, override.API.PageSize, cfg.API.PageSize)
	assert.Equal(t, override.Server.Port, cfg.Server.Port)
	assert.Equal(t, override.Server.RateLimitRPS, cfg.Server.RateLimitRPS)
	assert.Equal(t, override.Server.RateLimitBurst, cfg.Server.RateLimitBurst)
}
