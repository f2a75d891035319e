package vselect

import (
	"fmt"
	"log/slog"
	"time"
)

// Config controls accessor behaviour and the defaults handed to new selects
type Config struct {
	EnableCache   bool          // Cache normalized path strings
	PathCacheSize int           // Maximum number of cached paths
	MaxPathDepth  int           // Maximum number of segments in a path
	StrictWrites  bool          // Refuse to replace primitives at intermediate segments
	ComponentName string        // Name used by Install when none is given
	SearchDelay   time.Duration // Debounce delay applied to Select.Search
	LabelPath     string        // Path of the label inside container options
	ValuePath     string        // Path of the value inside container options; empty means the option itself
	Logger        *slog.Logger  // Structured logger; slog.Default() when nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		EnableCache:   true,
		PathCacheSize: DefaultPathCacheSize,
		MaxPathDepth:  DefaultMaxPathDepth,
		StrictWrites:  false,
		ComponentName: DefaultComponentName,
		SearchDelay:   DefaultSearchDelay,
		LabelPath:     DefaultLabelPath,
		ValuePath:     "",
	}
}

// ValidateConfig rejects unusable configurations and applies corrections
func ValidateConfig(config *Config) error {
	if config == nil {
		return newOperationError("validate_config", "config cannot be nil", ErrInvalidConfig)
	}
	if config.PathCacheSize < 0 {
		return newOperationError("validate_config", "PathCacheSize cannot be negative", ErrInvalidConfig)
	}
	if config.MaxPathDepth < 0 {
		return newOperationError("validate_config", "MaxPathDepth cannot be negative", ErrInvalidConfig)
	}
	if config.SearchDelay < 0 {
		return newOperationError("validate_config",
			fmt.Sprintf("SearchDelay cannot be negative (%s)", config.SearchDelay), ErrInvalidConfig)
	}
	return config.Validate()
}

// Validate clamps values into their supported ranges
func (c *Config) Validate() error {
	clampInt := func(value *int, def, max int) {
		if *value <= 0 {
			*value = def
		} else if *value > max {
			*value = max
		}
	}

	clampInt(&c.MaxPathDepth, DefaultMaxPathDepth, MaxAllowedPathDepth)

	if c.PathCacheSize <= 0 {
		c.PathCacheSize = 0
		c.EnableCache = false
	} else if c.PathCacheSize > MaxPathCacheSize {
		c.PathCacheSize = MaxPathCacheSize
	}

	if c.SearchDelay < 0 {
		c.SearchDelay = DefaultSearchDelay
	} else if c.SearchDelay > MaxSearchDelay {
		c.SearchDelay = MaxSearchDelay
	}

	if c.ComponentName == "" {
		c.ComponentName = DefaultComponentName
	}
	if c.LabelPath == "" {
		c.LabelPath = DefaultLabelPath
	}

	return nil
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	if c == nil {
		return DefaultConfig()
	}

	clone := *c
	return &clone
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// SelectOptions derives the Options a new Select starts from
func (c *Config) SelectOptions() Options {
	return Options{
		Name:        c.ComponentName,
		LabelPath:   c.LabelPath,
		ValuePath:   c.ValuePath,
		Searchable:  true,
		SearchDelay: c.SearchDelay,
		Logger:      c.Logger,
	}
}
