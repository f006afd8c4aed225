package config

import "time"

// Options configures the config loader.
type Options struct {
	// YAMLPath is the path to the primary YAML config file.
	YAMLPath string

	// EnvPath is the path to the fallback .env file, used only when YAML is absent.
	EnvPath string

	// EnvPrefix enables overrides from process environment variables,
	// e.g. prefix "REVIEW" maps "redis.host" to REVIEW_REDIS_HOST.
	// Empty disables environment overrides.
	EnvPrefix string

	// Defaults are applied before any file is read.
	Defaults map[string]any
}

// ConfigProvider is the read side of the service configuration. Reads may
// race with a reload, so implementations must be safe for concurrent use.
type ConfigProvider interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string
	// IsSet reports whether the key has a value, defaults included.
	IsSet(key string) bool

	// WatchChanges starts a background watch of the YAML file. It returns
	// immediately.
	WatchChanges()
	// OnChange registers fn to run, in registration order, after each
	// successful reload.
	OnChange(fn func())
	// StopWatching makes later file events no-ops. Safe to call twice.
	StopWatching()
	// Source is "yaml" or "env".
	Source() string
}
