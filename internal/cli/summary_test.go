package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/standardcheck/pkg/check"
)

func TestRunSummaryText(t *testing.T) {
	dir := t.TempDir()
	src := `def load(path):
    pass

class Store:
    """Hold rows."""
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mod.py"), []byte(src), 0o600))

	var buf bytes.Buffer
	require.NoError(t, RunSummary([]string{dir}, defaultIgnoreFile, "text", &buf))

	out := buf.String()
	assert.Contains(t, out, "mod.py:")
	assert.Contains(t, out, "Function load needs type annotation for the parameter path.")
	assert.Contains(t, out, "Function load is missing a return type annotation.")
	assert.Contains(t, out, "Function load is missing a docstring.")
	assert.NotContains(t, out, "Class Store")
}

func TestRunSummaryJSON(t *testing.T) {
	dir := t.TempDir()
	src := `def ok() -> None:
    """Fine."""
    pass
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mod.py"), []byte(src), 0o600))

	var buf bytes.Buffer
	require.NoError(t, RunSummary([]string{dir}, defaultIgnoreFile, "json", &buf))

	var summaries []*check.ModuleSummary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	require.Len(t, summaries[0].Functions, 1)
	assert.Equal(t, "ok", summaries[0].Functions[0].Name)
	assert.True(t, summaries[0].Functions[0].HasDocstring)
}

func TestRunSummaryUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := RunSummary([]string{t.TempDir()}, defaultIgnoreFile, "xml", &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestRunSummaryCleanFileOmitted(t *testing.T) {
	dir := t.TempDir()
	src := `def ok() -> None:
    """Fine."""
    pass
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mod.py"), []byte(src), 0o600))

	var buf bytes.Buffer
	require.NoError(t, RunSummary([]string{dir}, defaultIgnoreFile, "text", &buf))
	assert.Empty(t, buf.String())
}
