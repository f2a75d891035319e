package internal

import (
	"strings"
	"unicode/utf8"
)

// ContainsFold reports whether pattern occurs in s, ignoring case.
// An empty pattern matches everything.
func ContainsFold(s, pattern string) bool {
	if pattern == "" {
		return true
	}
	if isASCII(s) && isASCII(pattern) {
		return IndexIgnoreCase(s, pattern) >= 0
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(pattern))
}

// IndexIgnoreCase finds an ASCII pattern in s case-insensitively without allocation
func IndexIgnoreCase(s, pattern string) int {
	plen := len(pattern)
	slen := len(s)
	if plen == 0 {
		return 0
	}
	if plen > slen {
		return -1
	}

	first := toLowerASCII(pattern[0])

	// Only check positions where first character matches
	for i := 0; i <= slen-plen; i++ {
		if toLowerASCII(s[i]) == first && matchIgnoreCase(s[i:i+plen], pattern) {
			return i
		}
	}
	return -1
}

func matchIgnoreCase(s, pattern string) bool {
	if len(s) != len(pattern) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		if toLowerASCII(s[i]) != toLowerASCII(pattern[i]) {
			return false
		}
	}
	return true
}

func toLowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 32
	}
	return c
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// TruncateString truncates s to at most maxLen bytes, adding an ellipsis when
// room allows. The cut never splits a multi-byte rune.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:runeBoundary(s, maxLen)]
	}
	return s[:runeBoundary(s, maxLen-3)] + "..."
}

// runeBoundary backs n off to the start of the rune containing s[n]
func runeBoundary(s string, n int) int {
	if n <= 0 {
		return 0
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return n
}
