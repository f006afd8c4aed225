package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const (
	sourceYAML = "yaml"
	sourceEnv  = "env"
)

var _ ConfigProvider = (*viperConfig)(nil)

type viperConfig struct {
	mu        sync.RWMutex
	v         *viper.Viper
	source    string
	callbacks []func()
	stopOnce  sync.Once
	stopped   chan struct{}
}

// Init reads the YAML file when it exists and the .env file otherwise.
// Defaults and prefixed environment variables are layered under and over the
// file respectively.
func Init(opts Options) (ConfigProvider, error) {
	v := viper.New()
	for key, value := range opts.Defaults {
		v.SetDefault(key, value)
	}
	if opts.EnvPrefix != "" {
		v.SetEnvPrefix(opts.EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	source, path, err := pickSource(opts)
	if err != nil {
		return nil, err
	}
	v.SetConfigFile(path)
	v.SetConfigType(source)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read %s file: %w", source, err)
	}

	return &viperConfig{v: v, source: source, stopped: make(chan struct{})}, nil
}

func pickSource(opts Options) (source, path string, err error) {
	if isRegularFile(opts.YAMLPath) {
		return sourceYAML, opts.YAMLPath, nil
	}
	if isRegularFile(opts.EnvPath) {
		return sourceEnv, opts.EnvPath, nil
	}
	return "", "", fmt.Errorf("config: no config file found (tried %q and %q)", opts.YAMLPath, opts.EnvPath)
}

func isRegularFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func read[T any](c *viperConfig, get func(*viper.Viper) T) T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return get(c.v)
}

func (c *viperConfig) GetString(key string) string {
	return read(c, func(v *viper.Viper) string { return v.GetString(key) })
}

func (c *viperConfig) GetInt(key string) int {
	return read(c, func(v *viper.Viper) int { return v.GetInt(key) })
}

func (c *viperConfig) GetBool(key string) bool {
	return read(c, func(v *viper.Viper) bool { return v.GetBool(key) })
}

func (c *viperConfig) GetDuration(key string) time.Duration {
	return read(c, func(v *viper.Viper) time.Duration { return v.GetDuration(key) })
}

func (c *viperConfig) GetStringSlice(key string) []string {
	return read(c, func(v *viper.Viper) []string { return v.GetStringSlice(key) })
}

func (c *viperConfig) IsSet(key string) bool {
	return read(c, func(v *viper.Viper) bool { return v.IsSet(key) })
}

func (c *viperConfig) Source() string { return c.source }

func (c *viperConfig) OnChange(fn func()) {
	c.mu.Lock()
	c.callbacks = append(c.callbacks, fn)
	c.mu.Unlock()
}

// WatchChanges reloads the YAML file on every write and then runs the
// registered callbacks. The env source is never watched.
func (c *viperConfig) WatchChanges() {
	if c.source != sourceYAML {
		return
	}

	c.v.OnConfigChange(func(e fsnotify.Event) {
		if e.Has(fsnotify.Write) || e.Has(fsnotify.Create) {
			_ = c.reload()
		}
	})
	c.v.WatchConfig()
}

// reload rereads the file and fires callbacks outside the lock. A file that
// no longer parses keeps the previous settings.
func (c *viperConfig) reload() error {
	select {
	case <-c.stopped:
		return nil
	default:
	}

	c.mu.Lock()
	if err := c.v.ReadInConfig(); err != nil {
		c.mu.Unlock()
		return fmt.Errorf("config: failed to reload %s file: %w", c.source, err)
	}
	callbacks := append([]func(){}, c.callbacks...)
	c.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
	return nil
}

func (c *viperConfig) StopWatching() {
	c.stopOnce.Do(func() { close(c.stopped) })
}
