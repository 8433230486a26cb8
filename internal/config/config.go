// Package config loads the broker's TOML configuration file, defaulting
// unset fields the same way netconf/client/rpcsessionfactory.go defaults a
// session Config: via mergo.Merge against a package-level Default().
package config

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/imdario/mergo"
)

// Config holds the broker's runtime settings. NetconfSocket is the one
// setting named by the external spec; the remaining fields are
// broker-internal tunables, all independently overridable from the TOML
// file and defaulted via mergo otherwise.
type Config struct {
	NetconfSocket             string        `toml:"NetconfSocket"`
	ActivityCheckInterval     time.Duration `toml:"ActivityCheckInterval"`
	ActivityTimeout           time.Duration `toml:"ActivityTimeout"`
	ShutdownJoinDeadline      time.Duration `toml:"ShutdownJoinDeadline"`
	NotificationQueueCapacity int           `toml:"NotificationQueueCapacity"`
}

// Default returns the configuration defaults.
func Default() *Config {
	return &Config{
		NetconfSocket:             "/tmp/mod_netconf.sock",
		ActivityCheckInterval:     10 * time.Second,
		ActivityTimeout:           3600 * time.Second,
		ShutdownJoinDeadline:      5 * time.Second,
		NotificationQueueCapacity: 10,
	}
}

// Load reads a TOML file at path and fills in any unset field from Default.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	if err := mergo.Merge(cfg, Default()); err != nil {
		return nil, err
	}
	return cfg, nil
}
