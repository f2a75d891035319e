package vselect

// Binding is a path parsed once and bound to an accessor. It is the
// value-binding callback a form field keeps around: each call writes or
// reads the same location without re-parsing the path.
type Binding struct {
	accessor *Accessor
	path     Path
}

// Path returns a copy of the normalized path
func (b *Binding) Path() Path {
	return b.path.Child()
}

// Set stores value at the bound path under root and returns value
func (b *Binding) Set(root any, value any) (any, error) {
	if err := b.accessor.checkClosed("set"); err != nil {
		return nil, err
	}
	return b.accessor.setPath(b.path, root, value)
}

// Get returns the value at the bound path under root
func (b *Binding) Get(root any) (any, error) {
	if err := b.accessor.checkClosed("get"); err != nil {
		return nil, err
	}
	value, _ := b.accessor.lookupPath(b.path, root)
	return value, nil
}

// Lookup returns the value at the bound path with its Kind
func (b *Binding) Lookup(root any) (any, Kind, error) {
	if err := b.accessor.checkClosed("get"); err != nil {
		return nil, KindMissing, err
	}
	value, kind := b.accessor.lookupPath(b.path, root)
	return value, kind, nil
}

// Bind fixes root as well, returning a setter of one argument
func (b *Binding) Bind(root any) func(value any) (any, error) {
	return func(value any) (any, error) {
		return b.Set(root, value)
	}
}
