package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern string
		s       string
		want    bool
	}{
		{"*.py", "main.py", true},
		{"*.py", "main.txt", false},
		{"build/*", "build/gen.py", true},
		{"build/*", "src/build.py", false},
		{"*", "anything", true},
		{"**", "a/b/c", true},
		{"?.py", "a.py", true},
		{"?.py", "ab.py", false},
		{"test_*.py", "test_parser.py", true},
		{"test_*.py", "parser_test.py", false},
		{"a*c", "abc", true},
		{"a*c", "ac", true},
		{"a*c", "ab", false},
		{"exact.py", "exact.py", true},
		{"exact.py", "exact.pyc", false},
		{"", "", true},
		{"", "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.s, func(t *testing.T) {
			assert.Equal(t, tt.want, matchPattern(tt.pattern, tt.s))
		})
	}
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	mustWrite := func(rel string) {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0o600))
	}
	mustWrite("a.py")
	mustWrite("notes.txt")
	mustWrite("sub/c.py")
	mustWrite("build/gen.py")
	mustWrite("legacy_test.py")

	files, err := CollectFiles([]string{dir}, []string{"build", "*_test.py"})
	require.NoError(t, err)

	var rels []string
	for _, f := range files {
		rel, err := filepath.Rel(dir, f)
		require.NoError(t, err)
		rels = append(rels, filepath.ToSlash(rel))
	}
	assert.ElementsMatch(t, []string{"a.py", "sub/c.py"}, rels)
}

func TestCollectFilesDirectFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "single.py")
	require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0o600))

	files, err := CollectFiles([]string{path}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)

	// A non-Python file given directly is silently skipped.
	other := filepath.Join(dir, "single.txt")
	require.NoError(t, os.WriteFile(other, []byte("x"), 0o600))
	files, err = CollectFiles([]string{other}, nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestCollectFilesMissingPath(t *testing.T) {
	_, err := CollectFiles([]string{filepath.Join(t.TempDir(), "absent")}, nil)
	assert.Error(t, err)
}
