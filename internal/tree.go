package internal

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidPath indicates a malformed path
	ErrInvalidPath = errors.New("invalid path")
	// ErrEmptyPath indicates a write without any path segment
	ErrEmptyPath = errors.New("empty path")
	// ErrInvalidContainer indicates a root that cannot be written into
	ErrInvalidContainer = errors.New("invalid container")
	// ErrTypeMismatch indicates a slot that can neither be descended nor replaced
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrInvalidIndex indicates a non-numeric segment applied to a slice
	ErrInvalidIndex = fmt.Errorf("%w: segment is not a slice index", ErrInvalidPath)
	// ErrIndexOutOfRange indicates a slice index past the end of the slice
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Kind classifies a value found in a tree
type Kind uint8

const (
	// KindMissing marks an absent slot
	KindMissing Kind = iota
	// KindPrimitive marks a scalar leaf (nil, bool, number, string)
	KindPrimitive
	// KindContainer marks a walkable branch (map[string]any or []any)
	KindContainer
	// KindForeign marks a composite Go value the walk cannot enter
	KindForeign
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindPrimitive:
		return "primitive"
	case KindContainer:
		return "container"
	case KindForeign:
		return "foreign"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// KindOf classifies a present value. It never returns KindMissing.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return KindPrimitive
	case map[string]any, []any:
		return KindContainer
	}

	// Named scalar types (json.Number, custom enums, ...)
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return KindPrimitive
	}
	return KindForeign
}

// VivifyAction is the decision taken for an intermediate slot during a write
type VivifyAction uint8

const (
	// Descend walks into the existing container
	Descend VivifyAction = iota
	// Replace stores a fresh map[string]any in the slot and walks into it
	Replace
	// Reject aborts the write with ErrTypeMismatch
	Reject
)

// VivifyPolicy maps the kind of an intermediate slot to an action
type VivifyPolicy func(Kind) VivifyAction

// DefaultVivifyPolicy replaces missing and primitive slots, preserves
// containers and refuses to touch foreign values.
func DefaultVivifyPolicy(k Kind) VivifyAction {
	switch k {
	case KindContainer:
		return Descend
	case KindMissing, KindPrimitive:
		return Replace
	default:
		return Reject
	}
}

// StrictVivifyPolicy only creates containers in absent slots
func StrictVivifyPolicy(k Kind) VivifyAction {
	switch k {
	case KindContainer:
		return Descend
	case KindMissing:
		return Replace
	default:
		return Reject
	}
}

// SegmentError reports the segment at which a write failed
type SegmentError struct {
	Index   int
	Segment string
	Err     error
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("segment %d (%q): %v", e.Index, e.Segment, e.Err)
}

func (e *SegmentError) Unwrap() error {
	return e.Err
}

// Lookup walks segments from root and returns the value found with its kind.
// The walk stops with KindMissing as soon as it meets a non-container.
func Lookup(root any, segments []string) (any, Kind) {
	cur := root
	for _, seg := range segments {
		next, ok := child(cur, seg)
		if !ok {
			return nil, KindMissing
		}
		cur = next
	}
	return cur, KindOf(cur)
}

func child(node any, segment string) (any, bool) {
	switch n := node.(type) {
	case map[string]any:
		v, ok := n[segment]
		return v, ok
	case []any:
		idx, ok := ParseIndex(segment)
		if !ok || idx >= len(n) {
			return nil, false
		}
		return n[idx], true
	default:
		return nil, false
	}
}

// Assign stores value at segments under root, creating intermediate maps as
// the policy allows. root must be a non-nil map[string]any or []any.
func Assign(root any, segments []string, value any, policy VivifyPolicy) error {
	if len(segments) == 0 {
		return ErrEmptyPath
	}
	if !IsWritableContainer(root) {
		return ErrInvalidContainer
	}
	if policy == nil {
		policy = DefaultVivifyPolicy
	}

	cur := root
	last := len(segments) - 1
	for i, seg := range segments[:last] {
		next, err := descend(cur, seg, policy)
		if err != nil {
			return &SegmentError{Index: i, Segment: seg, Err: err}
		}
		cur = next
	}

	if err := put(cur, segments[last], value); err != nil {
		return &SegmentError{Index: last, Segment: segments[last], Err: err}
	}
	return nil
}

// IsWritableContainer reports whether v can receive a write
func IsWritableContainer(v any) bool {
	switch n := v.(type) {
	case map[string]any:
		return n != nil
	case []any:
		return n != nil
	default:
		return false
	}
}

func descend(node any, segment string, policy VivifyPolicy) (any, error) {
	existing, kind, err := slot(node, segment)
	if err != nil {
		return nil, err
	}

	// A nil map holds no siblings; treat it as absent so it gets replaced
	if m, ok := existing.(map[string]any); ok && m == nil {
		kind = KindMissing
	}

	switch policy(kind) {
	case Descend:
		return existing, nil
	case Replace:
		fresh := make(map[string]any)
		if err := put(node, segment, fresh); err != nil {
			return nil, err
		}
		return fresh, nil
	default:
		return nil, fmt.Errorf("%w: cannot descend into %s value", ErrTypeMismatch, kind)
	}
}

func slot(node any, segment string) (any, Kind, error) {
	switch n := node.(type) {
	case map[string]any:
		v, ok := n[segment]
		if !ok {
			return nil, KindMissing, nil
		}
		return v, KindOf(v), nil
	case []any:
		idx, err := sliceIndex(n, segment)
		if err != nil {
			return nil, KindMissing, err
		}
		return n[idx], KindOf(n[idx]), nil
	default:
		return nil, KindForeign, ErrTypeMismatch
	}
}

func put(node any, segment string, value any) error {
	switch n := node.(type) {
	case map[string]any:
		n[segment] = value
		return nil
	case []any:
		idx, err := sliceIndex(n, segment)
		if err != nil {
			return err
		}
		n[idx] = value
		return nil
	default:
		return ErrTypeMismatch
	}
}

func sliceIndex(s []any, segment string) (int, error) {
	idx, ok := ParseIndex(segment)
	if !ok {
		return 0, ErrInvalidIndex
	}
	if idx >= len(s) {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, idx, len(s))
	}
	return idx, nil
}
