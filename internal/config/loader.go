package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultScheme         = "https"
	defaultHostname       = "api.clickatell.com"
	defaultPort           = 443
	defaultTimeoutSeconds = 30
	defaultMetricsListen  = ":9090"
)

// Load loads configuration from file. Environment variables prefixed with
// SMS_BRIDGE_ override file values (SMS_BRIDGE_GATEWAY_PASSWORD and
// friends), so credentials can stay out of the config file.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Enable environment variable support
	v.SetEnvPrefix("SMS_BRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("gateway.scheme", defaultScheme)
	v.SetDefault("gateway.hostname", defaultHostname)
	v.SetDefault("gateway.port", defaultPort)
	v.SetDefault("gateway.timeout", defaultTimeoutSeconds*time.Second)
	v.SetDefault("gateway.delivery_ack", false)

	// AutomaticEnv only surfaces keys viper already knows about, so the
	// credential keys need empty defaults for env-only values to bind.
	v.SetDefault("gateway.username", "")
	v.SetDefault("gateway.password", "")
	v.SetDefault("gateway.api_id", "")
	v.SetDefault("gateway.session_id", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.listen", defaultMetricsListen)
}

func validate(cfg *Config) error {
	if cfg.Gateway.Scheme != "http" && cfg.Gateway.Scheme != "https" {
		return fmt.Errorf("gateway.scheme must be http or https, got %q", cfg.Gateway.Scheme)
	}

	if cfg.Gateway.Port <= 0 || cfg.Gateway.Port > 65535 {
		return fmt.Errorf("gateway.port out of range: %d", cfg.Gateway.Port)
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unknown logging.format %q", cfg.Logging.Format)
	}

	return nil
}
