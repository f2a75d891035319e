package vselect

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/cybergodev/vselect/internal"
)

// Accessor reads and writes values at dotted paths inside map[string]any / []any trees.
//
// The accessor owns no tree: callers pass the root on every call and remain
// responsible for synchronizing concurrent writes to it. The accessor's own
// state (path cache, counters) is safe for concurrent use.
type Accessor struct {
	id          string
	config      *Config
	cache       *internal.PathCache
	policy      internal.VivifyPolicy
	state       int32 // 0=active, 1=closed
	cleanupOnce sync.Once
	metrics     *internal.MetricsCollector
	logger      *slog.Logger
}

// NewAccessor creates an accessor with the given configuration.
// If no configuration is provided, uses default configuration.
func NewAccessor(config ...*Config) *Accessor {
	var cfg *Config
	if len(config) > 0 && config[0] != nil {
		cfg = config[0].Clone()
	} else {
		cfg = DefaultConfig()
	}

	if err := ValidateConfig(cfg); err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}

	a := &Accessor{
		id:      uuid.NewString(),
		config:  cfg,
		policy:  internal.DefaultVivifyPolicy,
		metrics: internal.NewMetricsCollector(),
		logger:  cfg.logger().With(slog.String("component", LogComponent)),
	}
	if cfg.StrictWrites {
		a.policy = internal.StrictVivifyPolicy
	}
	if cfg.EnableCache {
		a.cache = internal.NewPathCache(cfg.PathCacheSize)
	}
	return a
}

// ID returns the unique identifier of this accessor
func (a *Accessor) ID() string {
	return a.id
}

// Config returns a copy of the accessor configuration
func (a *Accessor) Config() *Config {
	return a.config.Clone()
}

// Close releases the path cache. Further calls fail with ErrAccessorClosed.
func (a *Accessor) Close() error {
	a.cleanupOnce.Do(func() {
		atomic.StoreInt32(&a.state, 1)
		if a.cache != nil {
			a.cache.Clear()
		}
	})
	return nil
}

// IsClosed reports whether Close has been called
func (a *Accessor) IsClosed() bool {
	return atomic.LoadInt32(&a.state) == 1
}

func (a *Accessor) checkClosed(operation string) error {
	if a.IsClosed() {
		return newOperationError(operation, "accessor is closed", ErrAccessorClosed)
	}
	return nil
}

// Normalize parses path the way every accessor operation does, using the path cache
func (a *Accessor) Normalize(path any) (Path, error) {
	return a.normalize("normalize", path)
}

func (a *Accessor) normalize(operation string, path any) (Path, error) {
	var p Path

	if s, ok := path.(string); ok && a.cache != nil {
		if segments, hit := a.cache.Get(s); hit {
			p = segments
		} else {
			p = NewPath(s)
			a.cache.Put(s, p)
		}
	} else {
		parsed, err := ParsePath(path)
		if err != nil {
			return nil, err
		}
		p = parsed
	}

	if len(p) > a.config.MaxPathDepth {
		return nil, newPathError(operation, p.String(),
			fmt.Sprintf("path has %d segments, limit is %d", len(p), a.config.MaxPathDepth), ErrDepthLimit)
	}
	return p, nil
}

// Get returns the value at path under root.
//
// A missing value is not an error: Get returns nil when any segment is absent
// or when the walk meets a non-container before the last segment. An empty
// path returns root itself.
func (a *Accessor) Get(path any, root any) (any, error) {
	value, _, err := a.Lookup(path, root)
	return value, err
}

// Lookup is Get with the kind of the result, so that an absent slot
// (KindMissing) can be told apart from a stored nil (KindPrimitive).
func (a *Accessor) Lookup(path any, root any) (any, Kind, error) {
	if err := a.checkClosed("get"); err != nil {
		return nil, KindMissing, err
	}

	p, err := a.normalize("get", path)
	if err != nil {
		a.recordError("get", fmt.Sprint(path), err)
		return nil, KindMissing, err
	}
	value, kind := a.lookupPath(p, root)
	return value, kind, nil
}

func (a *Accessor) lookupPath(p Path, root any) (any, Kind) {
	a.metrics.RecordGet()
	return internal.Lookup(root, p)
}

// Set stores value at path under root and returns value.
//
// Intermediate slots that are absent or hold a primitive are replaced with a
// new map[string]any; existing containers are walked into untouched, so
// sibling data survives. The final slot is overwritten unconditionally.
//
// root must be a non-nil map[string]any or []any owned by the caller. An
// empty path fails with ErrEmptyPath.
func (a *Accessor) Set(path any, root any, value any) (any, error) {
	if err := a.checkClosed("set"); err != nil {
		return nil, err
	}

	p, err := a.normalize("set", path)
	if err != nil {
		a.recordError("set", fmt.Sprint(path), err)
		return nil, err
	}
	return a.setPath(p, root, value)
}

func (a *Accessor) setPath(p Path, root any, value any) (any, error) {
	a.metrics.RecordSet()

	if p.IsRoot() {
		err := newPathError("set", "", "cannot set the root of a tree", ErrEmptyPath)
		a.recordError("set", "", err)
		return nil, err
	}

	if err := internal.Assign(root, p, value, a.policy); err != nil {
		wrapped := wrapTreeError("set", p, err)
		a.recordError("set", p.String(), wrapped)
		return nil, wrapped
	}
	return value, nil
}

// Model normalizes path once and returns a Binding that reuses it
func (a *Accessor) Model(path any) (*Binding, error) {
	if err := a.checkClosed("model"); err != nil {
		return nil, err
	}

	p, err := a.normalize("model", path)
	if err != nil {
		a.recordError("model", fmt.Sprint(path), err)
		return nil, err
	}
	a.metrics.RecordModel()
	return &Binding{accessor: a, path: p}, nil
}

// ClearCache drops all cached paths
func (a *Accessor) ClearCache() {
	if a.cache != nil {
		a.cache.Clear()
	}
}

func (a *Accessor) recordError(operation, path string, err error) {
	count := a.metrics.RecordError(errorType(err))
	a.logError(operation, path, err, count)
}
