package profiler

import (
	"net/url"
	"strings"
)

// Config controls when a request is profiled.
type Config struct {
	// EnableByDefault profiles every request without inspecting the query.
	EnableByDefault bool
	// QueryParam is the query parameter that enables profiling per request.
	QueryParam string
	// EnvOverride mirrors the PROFILER_ENABLED environment switch; when set it
	// wins over everything else.
	EnvOverride bool
}

// ShouldProfile decides whether a request should be profiled. Precedence: the
// environment override, then the configured default, then an explicit
// <QueryParam>=true on the request (case-insensitive). A parameter present
// with no value, or with any other value, does not enable profiling, and
// there is no per-request opt-out when the default or the override is on.
func ShouldProfile(cfg Config, query url.Values) bool {
	if cfg.EnvOverride || cfg.EnableByDefault {
		return true
	}
	return strings.EqualFold(query.Get(cfg.QueryParam), "true")
}
