package vselect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Path
	}{
		{"dotted", "a.b.c", Path{"a", "b", "c"}},
		{"doubled separator", "a..b", Path{"a", "b"}},
		{"leading and trailing", ".a.b.", Path{"a", "b"}},
		{"empty string", "", Path{}},
		{"slice", []string{"a", "b"}, Path{"a", "b"}},
		{"slice with empties", []string{"", "a", ""}, Path{"a"}},
		{"path", Path{"x", "", "y"}, Path{"x", "y"}},
		{"dots inside slice segment", []string{"a.b"}, Path{"a.b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePathRejectsOtherTypes(t *testing.T) {
	for _, in := range []any{nil, 1, 1.5, true, []int{1}, map[string]any{}} {
		_, err := ParsePath(in)
		assert.ErrorIs(t, err, ErrInvalidPath, "%#v", in)
	}
}

func TestPathHelpers(t *testing.T) {
	p := NewPath("a.b.c")

	assert.Equal(t, "a.b.c", p.String())
	assert.False(t, p.IsRoot())
	assert.Equal(t, Path{"a", "b"}, p.Parent())
	assert.Equal(t, "c", p.Last())
	assert.Equal(t, Path{"a", "b", "c", "d"}, p.Child("d", ""))

	// Appending to a parent must not clobber the original
	_ = append(p.Parent(), "z")
	assert.Equal(t, "c", p.Last())

	root := NewPath("")
	assert.True(t, root.IsRoot())
	assert.Equal(t, "", root.Last())
	assert.Equal(t, Path{}, root.Parent())
}
