// Package config loads the service's three environment variables via
// viper, the configuration library SPEC_FULL.md's ambient stack names —
// the teacher repo had no config layer of its own (env vars were read ad
// hoc), so this is built directly against viper's documented pattern of
// binding env vars and setting defaults before Unmarshal.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the service's full runtime configuration.
type Config struct {
	Host   string `mapstructure:"host"`
	Port   int    `mapstructure:"port"`
	APIKey string `mapstructure:"api_key"`
}

// Load reads HOST, PORT, and API_KEY from the environment, defaulting
// HOST to 0.0.0.0 and PORT to 8080 when unset. API_KEY has no default:
// an empty key means the authentication middleware rejects every request.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("")
	v.AutomaticEnv()
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8080)

	if err := v.BindEnv("host", "HOST"); err != nil {
		return Config{}, fmt.Errorf("config: bind HOST: %w", err)
	}
	if err := v.BindEnv("port", "PORT"); err != nil {
		return Config{}, fmt.Errorf("config: bind PORT: %w", err)
	}
	if err := v.BindEnv("api_key", "API_KEY"); err != nil {
		return Config{}, fmt.Errorf("config: bind API_KEY: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// Addr is the host:port string to listen on.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
