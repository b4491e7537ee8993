package check

import (
	"fmt"
	"os"
	"strings"
)

// Ignore-file markers. A line starting with the ignore marker names an
// identifier exempt from all checks; a comment line is skipped; every other
// non-blank line is a path glob used by the directory walker.
const (
	ignoreMarker  = "!"
	commentMarker = "#"
)

// IgnoreSet is an immutable set of identifier names exempt from naming and
// docstring checks. It is loaded once per run and injected into every
// Checker; there is no hidden global.
type IgnoreSet map[string]struct{}

// Has reports whether the name is exempt.
func (s IgnoreSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// IgnoreFile is the parsed content of an ignore file: exempt identifier
// names for the checker and path patterns for the walker.
type IgnoreFile struct {
	Names    IgnoreSet
	Patterns []string
}

// LoadIgnoreFile reads and parses an ignore file. A missing file is not an
// error; it yields an empty IgnoreFile, matching the usual linter behavior
// of running without one.
func LoadIgnoreFile(path string) (IgnoreFile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return IgnoreFile{Names: IgnoreSet{}}, nil
	}
	if err != nil {
		return IgnoreFile{}, fmt.Errorf("read ignore file: %w", err)
	}
	return ParseIgnoreFile(string(data)), nil
}

// ParseIgnoreFile parses ignore-file content.
func ParseIgnoreFile(content string) IgnoreFile {
	parsed := IgnoreFile{Names: IgnoreSet{}}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "" || strings.HasPrefix(line, commentMarker):
		case strings.HasPrefix(line, ignoreMarker):
			name := strings.Trim(line, ignoreMarker)
			if name != "" {
				parsed.Names[name] = struct{}{}
			}
		default:
			parsed.Patterns = append(parsed.Patterns, line)
		}
	}
	return parsed
}
