package internal

import (
	"reflect"
	"testing"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path     string
		expected []string
	}{
		{"", []string{}},
		{"a", []string{"a"}},
		{"a.b.c", []string{"a", "b", "c"}},
		{"a..b", []string{"a", "b"}},
		{".a.b.", []string{"a", "b"}},
		{"...", []string{}},
		{"items.0.name", []string{"items", "0", "name"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := SplitPath(tt.path)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitPath(%q) = %#v, want %#v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestCompactSegments(t *testing.T) {
	in := []string{"", "a", "", "b", ""}
	got := CompactSegments(in)
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("CompactSegments = %#v", got)
	}
	if len(in) != 5 {
		t.Error("CompactSegments must not modify its input")
	}
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		segment string
		want    int
		ok      bool
	}{
		{"0", 0, true},
		{"12", 12, true},
		{"007", 7, true},
		{"", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
		{"1e2", 0, false},
		{"a", 0, false},
		{"99999999999", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseIndex(tt.segment)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseIndex(%q) = (%d, %v), want (%d, %v)", tt.segment, got, ok, tt.want, tt.ok)
		}
	}
}
