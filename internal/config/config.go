package config

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/egoavara/launchkit/update"
)

// UpdateConfig contains update check settings
type UpdateConfig struct {
	PollIntervalSeconds int64 `json:"pollIntervalSeconds"` // minimum seconds between release feed polls (default: 7 days)
	DefaultForceRecheck bool  `json:"defaultForceRecheck"` // ignore the interval on every check (default: false)
}

// Config represents the main configuration file structure
type Config struct {
	Locale string       `json:"locale"` // "auto" or ISO format (e.g., "ko-KR", "en-US")
	Update UpdateConfig `json:"update"` // update check settings
}

var (
	cfg     *Config
	cfgOnce sync.Once
	cfgMu   sync.RWMutex
)

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Locale: "auto", // default: auto-detect system locale
		Update: UpdateConfig{
			PollIntervalSeconds: int64(update.DefaultPollInterval.Seconds()),
			DefaultForceRecheck: false,
		},
	}
}

// Load loads a configuration from a file path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewConfig(), nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Set default locale if empty
	if config.Locale == "" {
		config.Locale = "auto"
	}

	// Set default poll interval if unset
	if config.Update.PollIntervalSeconds <= 0 {
		config.Update.PollIntervalSeconds = int64(update.DefaultPollInterval.Seconds())
	}

	return &config, nil
}

// Save saves a configuration to a file path
func Save(path string, config *Config) error {
	cfgMu.Lock()
	defer cfgMu.Unlock()

	if err := EnsureDir(LaunchkitDir()); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Get returns the current configuration (singleton)
func Get() *Config {
	cfgOnce.Do(func() {
		var err error
		cfg, err = Load(ConfigPath())
		if err != nil {
			cfg = NewConfig()
		}
	})
	return cfg
}

// PollInterval returns the configured poll interval as a duration
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Update.PollIntervalSeconds) * time.Second
}

// GetLocale returns the configured locale
func GetLocale() string {
	return Get().Locale
}

// SetLocale sets the locale and saves
func SetLocale(locale string) error {
	config := Get()
	config.Locale = locale
	return Save(ConfigPath(), config)
}

// SetPollIntervalSeconds sets the poll interval and saves
func SetPollIntervalSeconds(seconds int64) error {
	config := Get()
	config.Update.PollIntervalSeconds = seconds
	return Save(ConfigPath(), config)
}

// SetDefaultForceRecheck sets the force recheck default and saves
func SetDefaultForceRecheck(force bool) error {
	config := Get()
	config.Update.DefaultForceRecheck = force
	return Save(ConfigPath(), config)
}
