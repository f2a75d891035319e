package vselect

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config for TOML and YAML documents.
// Pointer fields distinguish "absent" from a zero value.
type fileConfig struct {
	EnableCache   *bool  `toml:"enable_cache" yaml:"enable_cache"`
	PathCacheSize *int   `toml:"path_cache_size" yaml:"path_cache_size"`
	MaxPathDepth  *int   `toml:"max_path_depth" yaml:"max_path_depth"`
	StrictWrites  *bool  `toml:"strict_writes" yaml:"strict_writes"`
	ComponentName string `toml:"component_name" yaml:"component_name"`
	SearchDelay   string `toml:"search_delay" yaml:"search_delay"`
	LabelPath     string `toml:"label_path" yaml:"label_path"`
	ValuePath     string `toml:"value_path" yaml:"value_path"`
}

// LoadConfig reads a .toml, .yaml or .yml file over DefaultConfig and validates the result
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newOperationError("load_config", fmt.Sprintf("read %s: %v", path, err), err)
	}
	return ParseConfig(data, filepath.Ext(path))
}

// ParseConfig decodes a config document; format is a file extension such as ".toml"
func ParseConfig(data []byte, format string) (*Config, error) {
	var fc fileConfig

	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "toml":
		if _, err := toml.Decode(string(data), &fc); err != nil {
			return nil, newOperationError("parse_config", fmt.Sprintf("toml: %v", err), ErrInvalidConfig)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, newOperationError("parse_config", fmt.Sprintf("yaml: %v", err), ErrInvalidConfig)
		}
	default:
		return nil, newOperationError("parse_config",
			fmt.Sprintf("unsupported config format %q", format), ErrUnsupportedFormat)
	}

	cfg, err := fc.apply(DefaultConfig())
	if err != nil {
		return nil, err
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (fc *fileConfig) apply(cfg *Config) (*Config, error) {
	if fc.EnableCache != nil {
		cfg.EnableCache = *fc.EnableCache
	}
	if fc.PathCacheSize != nil {
		cfg.PathCacheSize = *fc.PathCacheSize
	}
	if fc.MaxPathDepth != nil {
		cfg.MaxPathDepth = *fc.MaxPathDepth
	}
	if fc.StrictWrites != nil {
		cfg.StrictWrites = *fc.StrictWrites
	}
	if fc.ComponentName != "" {
		cfg.ComponentName = fc.ComponentName
	}
	if fc.SearchDelay != "" {
		d, err := time.ParseDuration(fc.SearchDelay)
		if err != nil {
			return nil, newOperationError("parse_config",
				fmt.Sprintf("search_delay %q: %v", fc.SearchDelay, err), ErrInvalidConfig)
		}
		cfg.SearchDelay = d
	}
	if fc.LabelPath != "" {
		cfg.LabelPath = fc.LabelPath
	}
	if fc.ValuePath != "" {
		cfg.ValuePath = fc.ValuePath
	}
	return cfg, nil
}
