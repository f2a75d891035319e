package vselect

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryInstallOnce(t *testing.T) {
	reg := NewRegistry()

	res, err := reg.Install(InstallOptions{})
	require.NoError(t, err)
	assert.Equal(t, Installed, res)
	assert.True(t, reg.Installed(DefaultComponentName))

	res, err = reg.Install(InstallOptions{Mixin: func(o *Options) { o.Multiple = true }})
	require.NoError(t, err)
	assert.Equal(t, AlreadyInstalled, res)

	// The first registration is kept
	sel, err := reg.New(DefaultComponentName, nil)
	require.NoError(t, err)
	assert.False(t, sel.Options().Multiple)
}

func TestRegistryConcurrentInstall(t *testing.T) {
	reg := NewRegistry()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		installed int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := reg.Install(InstallOptions{Name: "shared"})
			if err == nil && res == Installed {
				mu.Lock()
				installed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, installed)
}

func TestRegistryMixinAndMutators(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LabelPath = "title"
	reg := NewRegistry(cfg)

	_, err := reg.Install(InstallOptions{
		Name: "tags",
		Mixin: func(o *Options) {
			o.Multiple = true
			o.ValuePath = "id"
		},
	})
	require.NoError(t, err)

	items := []any{map[string]any{"id": 1, "title": "Go"}}
	sel, err := reg.New("tags", items, func(o *Options) { o.MaxSelections = 3 }, nil)
	require.NoError(t, err)

	opts := sel.Options()
	assert.Equal(t, "tags", opts.Name)
	assert.Equal(t, "title", opts.LabelPath)
	assert.Equal(t, "id", opts.ValuePath)
	assert.True(t, opts.Multiple)
	assert.True(t, opts.Searchable)
	assert.Equal(t, 3, opts.MaxSelections)

	assert.Equal(t, "Go", sel.Label(items[0]))
	require.NoError(t, sel.Choose(items[0]))
	assert.Equal(t, []any{1}, sel.Value())
}

func TestRegistryErrors(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.New("absent", nil)
	assert.ErrorIs(t, err, ErrComponentNotFound)

	res, err := reg.Install(InstallOptions{Name: "bad name"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, NotInstalled, res)
}

func TestRegistryNames(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := reg.Install(InstallOptions{Name: name})
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, reg.Names())
}

func TestDefaultRegistry(t *testing.T) {
	_, err := Install(InstallOptions{Name: "default-registry-test"})
	require.NoError(t, err)

	sel, err := NewComponent("default-registry-test", []any{"a", "b"})
	require.NoError(t, err)
	assert.Len(t, sel.Filtered(), 2)
	assert.Same(t, DefaultRegistry(), DefaultRegistry())
}

func TestInstallResultString(t *testing.T) {
	assert.Equal(t, "installed", Installed.String())
	assert.Equal(t, "already installed", AlreadyInstalled.String())
	assert.Equal(t, "not installed", NotInstalled.String())
}

func TestRegistryAccessorFollowsConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StrictWrites = true
	cfg.MaxPathDepth = 2
	reg := NewRegistry(cfg)

	_, err := reg.Install(InstallOptions{Name: "strict"})
	require.NoError(t, err)
	sel, err := reg.New("strict", []any{"x"})
	require.NoError(t, err)
	assert.Same(t, reg.Accessor(), sel.Options().Accessor)

	root := map[string]any{"a": 1}
	require.NoError(t, sel.BindModel("a.b", root))
	err = sel.Choose("x")
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Equal(t, map[string]any{"a": 1}, root)

	assert.ErrorIs(t, sel.BindModel("a.b.c", root), ErrDepthLimit)
}
