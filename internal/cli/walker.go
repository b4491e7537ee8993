package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// CollectFiles walks the given paths and returns every Python file not
// excluded by the ignore patterns, in traversal order. Ignored directories
// are pruned, so their contents are never visited.
func CollectFiles(paths []string, patterns []string) ([]string, error) {
	var files []string
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}

		if !info.IsDir() {
			if isPythonFile(root) && !shouldIgnore(root, patterns) {
				files = append(files, root)
			}
			continue
		}

		err = filepath.WalkDir(root, func(path string, de fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if de.IsDir() {
				if path != root && shouldIgnore(path, patterns) {
					return filepath.SkipDir
				}
				return nil
			}
			if isPythonFile(path) && !shouldIgnore(path, patterns) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func isPythonFile(path string) bool {
	return strings.HasSuffix(path, ".py")
}

// shouldIgnore reports whether a path matches any ignore pattern. Patterns
// are matched against both the slash path and the basename.
func shouldIgnore(path string, patterns []string) bool {
	slashed := filepath.ToSlash(path)
	base := filepath.Base(path)
	for _, pattern := range patterns {
		if matchPattern(pattern, slashed) || matchPattern(pattern, base) {
			return true
		}
	}
	return false
}

// matchPattern is fnmatch-style glob matching: `*` matches any run of
// characters, separators included, and `?` matches a single character.
func matchPattern(pattern, s string) bool {
	for len(pattern) > 0 {
		switch pattern[0] {
		case '*':
			rest := strings.TrimLeft(pattern, "*")
			if rest == "" {
				return true
			}
			for i := 0; i <= len(s); i++ {
				if matchPattern(rest, s[i:]) {
					return true
				}
			}
			return false
		case '?':
			if s == "" {
				return false
			}
			pattern, s = pattern[1:], s[1:]
		default:
			if s == "" || s[0] != pattern[0] {
				return false
			}
			pattern, s = pattern[1:], s[1:]
		}
	}
	return s == ""
}
