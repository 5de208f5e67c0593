// Package config loads application settings from an optional config
// file and TLB_-prefixed environment variables.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all settings for the application
type Config struct {
	Port   string
	DBPath string

	RoutingBaseURL      string
	RoutingProfile      string
	RoutingTimeout      time.Duration
	RoutingRequestDelay time.Duration

	CostPerKm float64

	LogLevel string
}

// Load reads configuration, preferring env over file over defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", ":8080")
	v.SetDefault("database.path", "./data/timeline.db")
	v.SetDefault("routing.base_url", "https://router.project-osrm.org")
	v.SetDefault("routing.profile", "driving")
	v.SetDefault("routing.timeout", "10s")
	v.SetDefault("routing.request_delay", "100ms")
	v.SetDefault("analysis.cost_per_km", 0.30)
	v.SetDefault("log.level", "info")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvPrefix("TLB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// no config file is fine, defaults and env apply
	}

	return &Config{
		Port:                v.GetString("server.port"),
		DBPath:              v.GetString("database.path"),
		RoutingBaseURL:      v.GetString("routing.base_url"),
		RoutingProfile:      v.GetString("routing.profile"),
		RoutingTimeout:      v.GetDuration("routing.timeout"),
		RoutingRequestDelay: v.GetDuration("routing.request_delay"),
		CostPerKm:           v.GetFloat64("analysis.cost_per_km"),
		LogLevel:            v.GetString("log.level"),
	}, nil
}
