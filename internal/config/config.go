package config

import "github.com/caarlos0/env/v11"

type Config struct {
	Server    ServerConfig
	Profiler  ProfilerConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
}

type ProfilerConfig struct {
	// EnableByDefault profiles every request without requiring the query
	// parameter.
	EnableByDefault bool `env:"PROFILER_DEFAULT" envDefault:"false"`
	// QueryParam toggles profiling for an individual request, e.g.
	// ?profile=true.
	QueryParam string `env:"PROFILER_QUERY_PARAM" envDefault:"profile"`
	// MaxRetained bounds the number of records kept in memory.
	MaxRetained int `env:"PROFILER_MAX_RETAINED" envDefault:"1000"`
	// Enabled is the global switch; when true it forces profiling on
	// regardless of EnableByDefault.
	Enabled bool `env:"PROFILER_ENABLED" envDefault:"false"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"100"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"200"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
}

type CacheConfig struct {
	MaxEntries int64 `env:"CACHE_MAX_ENTRIES" envDefault:"1024"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
