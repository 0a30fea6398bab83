package runcfg

import (
	"maps"
)

// Config is a runtime configuration snapshot. Configurable holds per-call
// substitution values consulted by namespace resolution; Extra carries any
// other sections a host application loads alongside them.
type Config struct {
	Configurable map[string]any `yaml:"configurable" toml:"configurable" json:"configurable,omitempty"`
	Extra        map[string]any `yaml:",inline" toml:"-" json:"-"`
}

// New creates an empty Config with initialized maps.
func New() *Config {
	return &Config{
		Configurable: make(map[string]any),
		Extra:        make(map[string]any),
	}
}

// Value looks up a key in the configurable section.
// A nil Config behaves like an empty one.
func (c *Config) Value(key string) (any, bool) {
	if c == nil || c.Configurable == nil {
		return nil, false
	}
	v, ok := c.Configurable[key]
	return v, ok
}

// Set stores a key in the configurable section and returns the Config for
// chaining.
func (c *Config) Set(key string, value any) *Config {
	if c.Configurable == nil {
		c.Configurable = make(map[string]any)
	}
	c.Configurable[key] = value
	return c
}

// Clone returns a deep-enough copy: top-level maps are copied, values are
// shared. Returns nil for a nil receiver.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := &Config{}
	if c.Configurable != nil {
		clone.Configurable = maps.Clone(c.Configurable)
	}
	if c.Extra != nil {
		clone.Extra = maps.Clone(c.Extra)
	}
	return clone
}
