package runcfg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads a runtime configuration file. The format is chosen by
// extension: .yaml/.yml is parsed as YAML, .toml as TOML.
//
// The file's top-level "configurable" table becomes Config.Configurable;
// every other top-level key lands in Config.Extra.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var raw map[string]any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse yaml config: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse toml config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config extension %q", ext)
	}

	return fromRaw(raw), nil
}

// fromRaw splits a decoded top-level document into configurable and extra
// sections.
func fromRaw(raw map[string]any) *Config {
	cfg := New()
	for key, value := range raw {
		if key != "configurable" {
			cfg.Extra[key] = value
			continue
		}
		switch sub := value.(type) {
		case map[string]any:
			for k, v := range sub {
				cfg.Configurable[k] = v
			}
		case map[any]any:
			// Older YAML decoders produce interface-keyed maps.
			for k, v := range sub {
				cfg.Configurable[fmt.Sprint(k)] = v
			}
		default:
			cfg.Extra[key] = value
		}
	}
	return cfg
}
