// File: nest/helper.go
package nest

import (
	"fmt"
	"strconv"
	"strings"
)

// splitPath splits a path string on the configured separator.
// Empty segments are preserved literally; consecutive separators therefore
// produce empty-string segments that act as ordinary (likely non-matching)
// keys.
func (n *Nest) splitPath(path string) []any {
	parts := strings.Split(path, n.opts.Separator)
	segments := make([]any, len(parts))
	for i, p := range parts {
		segments[i] = p
	}
	return segments
}

// normalizeSegments validates a pre-split segment slice.
// Only string and int segments are accepted; anything else is an input
// error regardless of the configured failure mode.
func normalizeSegments(segments []any) ([]any, *Error) {
	if len(segments) == 0 {
		return nil, newError(ErrInvalidInput, "at least one path segment is required")
	}
	for _, seg := range segments {
		switch seg.(type) {
		case string, int:
		default:
			return nil, newError(ErrInvalidInput, "only string or int path segments are supported, got %T", seg)
		}
	}
	return segments, nil
}

// joinSegments renders a segment slice back into a path string using the
// configured separator.
func (n *Nest) joinSegments(segments []any) string {
	var b strings.Builder
	for i, seg := range segments {
		if i > 0 {
			b.WriteString(n.opts.Separator)
		}
		b.WriteString(segmentString(seg))
	}
	return b.String()
}

// segmentString renders a single segment or coerced key as path text.
func segmentString(seg any) string {
	switch s := seg.(type) {
	case string:
		return s
	case int:
		return strconv.Itoa(s)
	default:
		// Mapping keys of other types surface during wildcard iteration
		// over map[any]any containers.
		return fmt.Sprintf("%v", seg)
	}
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
