package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everoutes/eve-routes-go/internal/infrastructure/config"
)

func TestSetDefaults(t *testing.T) {
	cfg := &config.Config{}

	config.SetDefaults(cfg)

	assert.Equal(t, "https://esi.evetech.net/latest", cfg.ESI.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.ESI.Timeout)
	assert.Equal(t, 100*time.Millisecond, cfg.ESI.MinRequestInterval)
	assert.Equal(t, 50, cfg.ESI.MaxPages)
	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, 10, cfg.Server.RateLimitPerMinute)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 33500.0, cfg.Trading.DefaultMaxCargo)
	assert.Equal(t, 100000.0, cfg.Trading.DefaultMinProfit)
	assert.Equal(t, 35, cfg.Trading.ResultLimit)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestSetDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &config.Config{}
	cfg.ESI.MaxPages = 10
	cfg.Trading.ResultLimit = 5

	config.SetDefaults(cfg)

	assert.Equal(t, 10, cfg.ESI.MaxPages)
	assert.Equal(t, 5, cfg.Trading.ResultLimit)
}

func TestValidateConfig_DefaultsAreValid(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)

	require.NoError(t, config.ValidateConfig(cfg))
}

func TestValidateConfig_RejectsBadLevel(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)
	cfg.Logging.Level = "verbose"

	err := config.ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Level")
}

func TestValidateConfig_RejectsBadURL(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)
	cfg.ESI.BaseURL = "not a url"

	require.Error(t, config.ValidateConfig(cfg))
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, 50, cfg.ESI.MaxPages)
}
