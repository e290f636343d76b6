package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// ESI defaults
	if cfg.ESI.BaseURL == "" {
		cfg.ESI.BaseURL = "https://esi.evetech.net/latest"
	}
	if cfg.ESI.UserAgent == "" {
		cfg.ESI.UserAgent = "EVE-Routes/1.0 (https://github.com/everoutes/eve-routes-go)"
	}
	if cfg.ESI.Timeout == 0 {
		cfg.ESI.Timeout = 30 * time.Second
	}
	if cfg.ESI.MinRequestInterval == 0 {
		cfg.ESI.MinRequestInterval = 100 * time.Millisecond
	}
	if cfg.ESI.MaxPages == 0 {
		cfg.ESI.MaxPages = 50
	}

	// Server defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":5000"
	}
	if cfg.Server.RateLimitPerMinute == 0 {
		cfg.Server.RateLimitPerMinute = 10
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = []string{"*"}
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}

	// Cache defaults
	if cfg.Cache.RedisURL == "" {
		cfg.Cache.RedisURL = "redis://localhost:6379/0"
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 5 * time.Minute
	}

	// Trading defaults
	if cfg.Trading.DefaultMaxCargo == 0 {
		cfg.Trading.DefaultMaxCargo = 33500
	}
	if cfg.Trading.DefaultMinProfit == 0 {
		cfg.Trading.DefaultMinProfit = 100000
	}
	if cfg.Trading.ResultLimit == 0 {
		cfg.Trading.ResultLimit = 35
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}
