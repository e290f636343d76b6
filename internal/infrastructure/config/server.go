package config

import "time"

// ServerConfig holds HTTP API server configuration
type ServerConfig struct {
	// Listen address, e.g. ":5000"
	Addr string `mapstructure:"addr" validate:"required"`

	// Per-client-IP request budget per minute
	RateLimitPerMinute int `mapstructure:"rate_limit_per_minute" validate:"min=1"`

	// Origins allowed by CORS
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`

	// Graceful shutdown grace period
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// CacheConfig holds Redis result cache configuration
type CacheConfig struct {
	// Redis connection URL, e.g. "redis://localhost:6379/0"
	RedisURL string `mapstructure:"redis_url"`

	// TTL for cached analysis results
	TTL time.Duration `mapstructure:"ttl" validate:"min=0"`

	// Disable the cache entirely (the server also degrades to uncached
	// operation when Redis is unreachable at startup)
	Enabled bool `mapstructure:"enabled"`
}

// TradingConfig holds defaults applied when a query omits parameters
type TradingConfig struct {
	// Default cargo capacity in m³ (a typical hauler hold)
	DefaultMaxCargo float64 `mapstructure:"default_max_cargo" validate:"min=1"`

	// Default minimum total profit in ISK
	DefaultMinProfit float64 `mapstructure:"default_min_profit" validate:"min=0"`

	// Maximum opportunities returned to callers
	ResultLimit int `mapstructure:"result_limit" validate:"min=1"`
}
