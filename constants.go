package vselect

import "time"

const (
	// Component registration
	DefaultComponentName = "vSelect"

	// Path handling
	DefaultPathCacheSize = 256
	MaxPathCacheSize     = 4096
	DefaultMaxPathDepth  = 64
	MaxAllowedPathDepth  = 512

	// Select behaviour
	DefaultSearchDelay = 0 * time.Millisecond
	MaxSearchDelay     = 10 * time.Second
	DefaultLabelPath   = "label"

	// Logging
	LogComponent      = "vselect"
	maxLoggedPathLen  = 100
	maxLoggedErrorLen = 200
)
