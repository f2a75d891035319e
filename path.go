package vselect

import (
	"fmt"

	"github.com/cybergodev/vselect/internal"
)

// Path is an ordered list of non-empty segments addressing a slot in a tree
type Path []string

// NewPath splits a dotted path, dropping empty segments
func NewPath(path string) Path {
	return Path(internal.SplitPath(path))
}

// ParsePath normalizes a path given as a string, a []string or a Path.
// Empty segments are discarded in every form. Other types are rejected.
func ParsePath(path any) (Path, error) {
	switch p := path.(type) {
	case string:
		return NewPath(p), nil
	case Path:
		return Path(internal.CompactSegments(p)), nil
	case []string:
		return Path(internal.CompactSegments(p)), nil
	default:
		return nil, newOperationError("parse_path",
			fmt.Sprintf("unsupported path type %T", path), ErrInvalidPath)
	}
}

// String joins the segments with dots
func (p Path) String() string {
	return internal.JoinPath(p)
}

// IsRoot reports whether the path has no segments
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Parent returns the path without its last segment
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}
	return p[: len(p)-1 : len(p)-1]
}

// Last returns the final segment, or "" for the root path
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Child returns a new path extended by segments
func (p Path) Child(segments ...string) Path {
	out := make(Path, 0, len(p)+len(segments))
	out = append(out, p...)
	for _, s := range segments {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
