package vselect

import "github.com/cybergodev/vselect/internal"

// Kind classifies a slot in a data tree. The walk dispatches on it instead
// of probing runtime types ad hoc.
type Kind = internal.Kind

const (
	KindMissing   = internal.KindMissing   // absent key, out-of-range index, or walk stopped early
	KindPrimitive = internal.KindPrimitive // nil, bool, number, string
	KindContainer = internal.KindContainer // map[string]any or []any
	KindForeign   = internal.KindForeign   // any other composite Go value
)

// KindOf classifies a present value
func KindOf(v any) Kind {
	return internal.KindOf(v)
}
