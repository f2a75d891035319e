package internal

import (
	"strconv"
	"strings"
)

// PathSeparator separates segments in a dotted path string
const PathSeparator = '.'

// SplitPath splits a dotted path into its non-empty segments.
// Leading, trailing and doubled separators are discarded.
func SplitPath(path string) []string {
	if path == "" {
		return []string{}
	}

	// Fast path: no separator at all
	if strings.IndexByte(path, PathSeparator) < 0 {
		return []string{path}
	}

	segments := make([]string, 0, strings.Count(path, ".")+1)
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] != PathSeparator {
			continue
		}
		if i > start {
			segments = append(segments, path[start:i])
		}
		start = i + 1
	}
	if start < len(path) {
		segments = append(segments, path[start:])
	}
	return segments
}

// CompactSegments returns a copy of segments with empty entries removed
func CompactSegments(segments []string) []string {
	result := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}

// JoinPath is the inverse of SplitPath for already-normalized segments
func JoinPath(segments []string) string {
	return strings.Join(segments, ".")
}

// ParseIndex parses a slice index segment.
// Only plain non-negative decimal numbers are accepted ("+1", "-0", "1e2" are not).
func ParseIndex(segment string) (int, bool) {
	if segment == "" || len(segment) > 10 {
		return 0, false
	}
	for i := 0; i < len(segment); i++ {
		if segment[i] < '0' || segment[i] > '9' {
			return 0, false
		}
	}
	idx, err := strconv.Atoi(segment)
	if err != nil {
		return 0, false
	}
	return idx, true
}
