package internal

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

type opaque struct{ N int }

func TestKindOf(t *testing.T) {
	type level int

	tests := []struct {
		name  string
		value any
		want  Kind
	}{
		{"nil", nil, KindPrimitive},
		{"int", 5, KindPrimitive},
		{"float", 1.5, KindPrimitive},
		{"string", "x", KindPrimitive},
		{"bool", true, KindPrimitive},
		{"named int", level(2), KindPrimitive},
		{"json number", json.Number("3"), KindPrimitive},
		{"map", map[string]any{}, KindContainer},
		{"slice", []any{}, KindContainer},
		{"nil map", map[string]any(nil), KindContainer},
		{"typed map", map[string]int{}, KindForeign},
		{"typed slice", []string{}, KindForeign},
		{"struct", opaque{}, KindForeign},
		{"pointer", &opaque{}, KindForeign},
		{"func", func() {}, KindForeign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.value); got != tt.want {
				t.Errorf("KindOf(%#v) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	root := map[string]any{
		"a": map[string]any{
			"b":    1,
			"nil":  nil,
			"list": []any{"x", map[string]any{"y": "z"}},
		},
		"s": "str",
	}

	tests := []struct {
		name     string
		segments []string
		value    any
		kind     Kind
	}{
		{"leaf", []string{"a", "b"}, 1, KindPrimitive},
		{"stored nil", []string{"a", "nil"}, nil, KindPrimitive},
		{"absent", []string{"a", "missing"}, nil, KindMissing},
		{"through primitive", []string{"s", "x"}, nil, KindMissing},
		{"through leaf", []string{"a", "b", "c"}, nil, KindMissing},
		{"slice index", []string{"a", "list", "0"}, "x", KindPrimitive},
		{"into slice element", []string{"a", "list", "1", "y"}, "z", KindPrimitive},
		{"slice out of range", []string{"a", "list", "5"}, nil, KindMissing},
		{"slice bad index", []string{"a", "list", "first"}, nil, KindMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, kind := Lookup(root, tt.segments)
			if kind != tt.kind {
				t.Errorf("kind = %s, want %s", kind, tt.kind)
			}
			if !reflect.DeepEqual(value, tt.value) {
				t.Errorf("value = %#v, want %#v", value, tt.value)
			}
		})
	}

	t.Run("no segments returns root", func(t *testing.T) {
		value, kind := Lookup(root, nil)
		if kind != KindContainer || !reflect.DeepEqual(value, root) {
			t.Errorf("Lookup(root, nil) = %#v, %s", value, kind)
		}
	})

	t.Run("nil root", func(t *testing.T) {
		if _, kind := Lookup(nil, []string{"a"}); kind != KindMissing {
			t.Errorf("kind = %s, want missing", kind)
		}
	})
}

func TestAssignCreatesIntermediates(t *testing.T) {
	root := map[string]any{}
	if err := Assign(root, []string{"a", "b", "c"}, 1, nil); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	want := map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}}
	if !reflect.DeepEqual(root, want) {
		t.Errorf("root = %#v, want %#v", root, want)
	}
}

func TestAssignPreservesSiblings(t *testing.T) {
	root := map[string]any{"a": map[string]any{"b": 1, "c": 2}}
	if err := Assign(root, []string{"a", "c"}, 99, nil); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := Assign(root, []string{"a", "d", "e"}, true, nil); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	want := map[string]any{"a": map[string]any{"b": 1, "c": 99, "d": map[string]any{"e": true}}}
	if !reflect.DeepEqual(root, want) {
		t.Errorf("root = %#v, want %#v", root, want)
	}
}

func TestAssignReplacesPrimitiveIntermediate(t *testing.T) {
	root := map[string]any{"a": 5, "n": nil}
	if err := Assign(root, []string{"a", "b"}, "x", nil); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := Assign(root, []string{"n", "m"}, "y", nil); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	want := map[string]any{"a": map[string]any{"b": "x"}, "n": map[string]any{"m": "y"}}
	if !reflect.DeepEqual(root, want) {
		t.Errorf("root = %#v, want %#v", root, want)
	}
}

func TestAssignReplacesNilMap(t *testing.T) {
	root := map[string]any{"a": map[string]any(nil)}
	if err := Assign(root, []string{"a", "b"}, 1, nil); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if v, _ := Lookup(root, []string{"a", "b"}); v != 1 {
		t.Errorf("a.b = %#v, want 1", v)
	}
}

func TestAssignSlices(t *testing.T) {
	root := map[string]any{"list": []any{"x", map[string]any{"keep": true}, 3}}

	if err := Assign(root, []string{"list", "0"}, "y", nil); err != nil {
		t.Fatalf("Assign list.0: %v", err)
	}
	if err := Assign(root, []string{"list", "1", "added"}, 1, nil); err != nil {
		t.Fatalf("Assign list.1.added: %v", err)
	}
	if err := Assign(root, []string{"list", "2", "z"}, 1, nil); err != nil {
		t.Fatalf("Assign list.2.z: %v", err)
	}

	want := map[string]any{"list": []any{
		"y",
		map[string]any{"keep": true, "added": 1},
		map[string]any{"z": 1},
	}}
	if !reflect.DeepEqual(root, want) {
		t.Errorf("root = %#v, want %#v", root, want)
	}

	err := Assign(root, []string{"list", "7"}, 1, nil)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("out of range: got %v", err)
	}

	err = Assign(root, []string{"list", "first", "x"}, 1, nil)
	if !errors.Is(err, ErrInvalidIndex) || !errors.Is(err, ErrInvalidPath) {
		t.Errorf("bad index: got %v", err)
	}
}

func TestAssignRejectsForeign(t *testing.T) {
	root := map[string]any{"o": opaque{N: 1}}
	err := Assign(root, []string{"o", "N"}, 2, nil)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v, want ErrTypeMismatch", err)
	}

	var segErr *SegmentError
	if !errors.As(err, &segErr) || segErr.Index != 0 || segErr.Segment != "o" {
		t.Errorf("segment error = %#v", segErr)
	}
	if root["o"] != (opaque{N: 1}) {
		t.Error("foreign value must be left untouched")
	}
}

func TestAssignStrictPolicy(t *testing.T) {
	root := map[string]any{"a": 1}
	if err := Assign(root, []string{"a", "b"}, 2, StrictVivifyPolicy); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("strict policy over primitive: got %v", err)
	}
	if err := Assign(root, []string{"c", "d"}, 2, StrictVivifyPolicy); err != nil {
		t.Errorf("strict policy over missing: %v", err)
	}
}

func TestAssignInvalidInput(t *testing.T) {
	if err := Assign(map[string]any{}, nil, 1, nil); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("empty path: got %v", err)
	}
	for _, root := range []any{nil, map[string]any(nil), "x", map[string]int{}} {
		if err := Assign(root, []string{"a"}, 1, nil); !errors.Is(err, ErrInvalidContainer) {
			t.Errorf("root %#v: got %v", root, err)
		}
	}
}
