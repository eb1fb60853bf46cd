package plainpath

import (
	"errors"
	"fmt"
	"strings"
)

// Separator splits a dotted path into segments.
const Separator = "."

// Path is a parsed dotted path like "nested.items.0.name".
type Path struct {
	Segments []string
}

// Split splits path on the separator. Empty segments are kept, so "a..b"
// addresses the key "" inside "a".
func Split(path string) []string {
	return strings.Split(path, Separator)
}

// ParsePath parses a dotted path and rejects empty paths and empty segments.
// Conversions never call it; it is used to report suspicious declarations.
func ParsePath(path string) (Path, error) {
	if path == "" {
		return Path{}, errors.New("empty path")
	}

	segments := Split(path)
	for _, seg := range segments {
		if seg == "" {
			return Path{}, fmt.Errorf("invalid path %q: empty segment", path)
		}
	}

	return Path{Segments: segments}, nil
}

// String returns the path as a dotted string.
func (p Path) String() string {
	return strings.Join(p.Segments, Separator)
}

// IsSimple returns true if the path is a single key.
func (p Path) IsSimple() bool {
	return len(p.Segments) == 1
}

// Root returns the first segment.
func (p Path) Root() string {
	if len(p.Segments) == 0 {
		return ""
	}

	return p.Segments[0]
}
