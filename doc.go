// Package vselect provides the state of a select control, without any
// rendering, together with the dotted-path accessor it uses to bind values
// into host data.
//
// The package uses an internal package for implementation details:
//
//   - internal: path splitting, the path cache, the tree walk with its
//     auto-vivification policy, decoder output normalization and string helpers
//
// # Path access
//
// Trees are built from map[string]any and []any. Paths are dotted strings,
// []string or Path values; empty segments are ignored, so "a..b" and
// ".a.b." both address a.b.
//
//	data := map[string]any{"user": map[string]any{"name": "Ann", "age": 31}}
//	name, err := vselect.Get("user.name", data)     // "Ann"
//	_, err = vselect.Set("user.address.city", data, "Oslo")
//
// Set creates missing maps along the way and replaces primitives sitting
// where a map is needed, but never replaces an existing container, so
// sibling keys survive. Reading a path that does not exist returns nil, not
// an error; Lookup also returns the Kind of the slot so that an absent value
// can be told apart from a stored nil.
//
// Model parses a path once for repeated use:
//
//	city, err := vselect.Model("user.address.city")
//	setCity := city.Bind(data)
//	setCity("Bergen")
//
// # Select
//
//	reg := vselect.NewRegistry()
//	reg.Install(vselect.InstallOptions{Mixin: func(o *vselect.Options) { o.ValuePath = "id" }})
//	sel, err := reg.New(vselect.DefaultComponentName, items)
//	sel.BindModel("form.country", form)
//	sel.Search("nor")
//	sel.ChooseHighlighted()
//
// Options can be loaded from a URL (HTTPSource) or from JSON, YAML and TOML
// files (FileSource).
//
// # Configuration
//
//	cfg, err := vselect.LoadConfig("vselect.toml")
//	accessor := vselect.NewAccessor(cfg)
//	defer accessor.Close()
package vselect
