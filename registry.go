package vselect

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// InstallResult tells whether Install registered a component
type InstallResult int

const (
	// NotInstalled accompanies an Install error
	NotInstalled InstallResult = iota
	// Installed means the component was registered by this call
	Installed
	// AlreadyInstalled means a component with that name existed; nothing changed
	AlreadyInstalled
)

func (r InstallResult) String() string {
	switch r {
	case NotInstalled:
		return "not installed"
	case Installed:
		return "installed"
	case AlreadyInstalled:
		return "already installed"
	default:
		return fmt.Sprintf("InstallResult(%d)", int(r))
	}
}

// InstallOptions configures a component registration
type InstallOptions struct {
	Name  string         // Component name; the registry default when empty
	Mixin func(*Options) // Applied to every Select created under Name before caller mutators
}

type component struct {
	name  string
	mixin func(*Options)
}

// Registry holds installed select components by name
type Registry struct {
	mu         sync.RWMutex
	config     *Config
	accessor   *Accessor
	components map[string]*component
}

// NewRegistry creates an empty registry. Its selects start from config's
// options and share one accessor built from config.
func NewRegistry(config ...*Config) *Registry {
	cfg := DefaultConfig()
	if len(config) > 0 && config[0] != nil {
		cfg = config[0].Clone()
	}
	if err := ValidateConfig(cfg); err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}
	return &Registry{
		config:     cfg,
		accessor:   NewAccessor(cfg),
		components: make(map[string]*component),
	}
}

// Install registers a component. Installing a name twice is not an error:
// the second call reports AlreadyInstalled and keeps the first registration.
func (r *Registry) Install(opts InstallOptions) (InstallResult, error) {
	name := opts.Name
	if name == "" {
		name = r.config.ComponentName
	}
	if strings.ContainsAny(name, " \t\r\n") {
		return NotInstalled, newOperationError("install", fmt.Sprintf("invalid component name %q", name), ErrInvalidConfig)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.components[name]; exists {
		return AlreadyInstalled, nil
	}
	r.components[name] = &component{name: name, mixin: opts.Mixin}
	return Installed, nil
}

// Installed reports whether name has been installed
func (r *Registry) Installed(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.components[name]
	return ok
}

// Accessor returns the accessor shared by the registry's selects
func (r *Registry) Accessor() *Accessor {
	return r.accessor
}

// Names returns the installed component names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates a Select of the named component. The registry defaults are
// applied first, then the component mixin, then mutators.
func (r *Registry) New(name string, items []any, mutators ...func(*Options)) (*Select, error) {
	r.mu.RLock()
	c, ok := r.components[name]
	r.mu.RUnlock()
	if !ok {
		return nil, newOperationError("new_component",
			fmt.Sprintf("component %q is not installed", name), ErrComponentNotFound)
	}

	opts := r.config.SelectOptions()
	opts.Name = c.name
	opts.Accessor = r.accessor
	if c.mixin != nil {
		c.mixin(&opts)
	}
	for _, m := range mutators {
		if m != nil {
			m(&opts)
		}
	}
	return NewSelect(opts, items...), nil
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry used by Install and NewComponent
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Install registers a component on the default registry
func Install(opts InstallOptions) (InstallResult, error) {
	return DefaultRegistry().Install(opts)
}

// NewComponent creates a Select of an installed component from the default registry
func NewComponent(name string, items []any, mutators ...func(*Options)) (*Select, error) {
	return DefaultRegistry().New(name, items, mutators...)
}
