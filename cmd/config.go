package cmd

import (
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// defaultListenAddr matches the port the upstream scanner expects the
	// analyzer bridge on.
	defaultListenAddr      = "127.0.0.1:3002"
	defaultRateBurst       = 20
	defaultShutdownTimeout = 30 * time.Second
)

// ServeConfig consolidates flag- and config-file-driven settings for the
// serve command.
type ServeConfig struct {
	Addr            string
	CORSOrigins     []string
	RateLimit       int
	RateBurst       int
	ShutdownTimeout time.Duration
}

// resolveServeConfig reads the serve flags, falling back to config file
// values for any flag the user did not set explicitly.
func resolveServeConfig(fs *pflag.FlagSet) ServeConfig {
	cfg := ServeConfig{}
	cfg.Addr, _ = fs.GetString("addr")
	cfg.CORSOrigins, _ = fs.GetStringSlice("cors-origins")
	cfg.RateLimit, _ = fs.GetInt("rate-limit")
	cfg.RateBurst, _ = fs.GetInt("rate-burst")
	cfg.ShutdownTimeout, _ = fs.GetDuration("shutdown-timeout")

	if !fs.Changed("addr") && viper.IsSet("serve.addr") {
		cfg.Addr = viper.GetString("serve.addr")
	}
	if !fs.Changed("cors-origins") && viper.IsSet("serve.cors_origins") {
		cfg.CORSOrigins = viper.GetStringSlice("serve.cors_origins")
	}
	if !fs.Changed("rate-limit") && viper.IsSet("serve.rate_limit") {
		cfg.RateLimit = viper.GetInt("serve.rate_limit")
	}
	if !fs.Changed("rate-burst") && viper.IsSet("serve.rate_burst") {
		cfg.RateBurst = viper.GetInt("serve.rate_burst")
	}

	return cfg
}
