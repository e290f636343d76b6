package config

import "time"

// ESIConfig holds EVE ESI market API client configuration
type ESIConfig struct {
	// Base URL for the ESI API
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// User-Agent sent with every request (ESI asks callers to identify themselves)
	UserAgent string `mapstructure:"user_agent" validate:"required"`

	// Request timeout
	Timeout time.Duration `mapstructure:"timeout" validate:"required"`

	// Minimum wall-clock spacing between successive outbound requests
	MinRequestInterval time.Duration `mapstructure:"min_request_interval"`

	// Hard ceiling on order-book pages fetched per region/side
	MaxPages int `mapstructure:"max_pages" validate:"min=1"`
}
