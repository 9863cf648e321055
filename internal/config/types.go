// Package config defines configuration structures for the SMS bridge.
package config

import "time"

// Config represents the complete configuration for the SMS bridge.
type Config struct {
	Gateway GatewayConfig `mapstructure:"gateway"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// GatewayConfig represents the Clickatell gateway connection configuration.
type GatewayConfig struct {
	Scheme   string        `mapstructure:"scheme"`
	Hostname string        `mapstructure:"hostname"`
	Port     int           `mapstructure:"port"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	APIID    string        `mapstructure:"api_id"`
	Timeout  time.Duration `mapstructure:"timeout"`

	// DeliveryAck requests delivery acknowledgements on every outbound
	// message.
	DeliveryAck bool `mapstructure:"delivery_ack"`

	// SessionID pre-seeds a session token, skipping credential auth.
	SessionID string `mapstructure:"session_id"`
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "console"
}

// MetricsConfig represents metrics configuration.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Listen  string `mapstructure:"listen"`
}
