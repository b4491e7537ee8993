package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/standardcheck/pkg/check"
)

func sampleReport() *Report {
	return &Report{
		Files: 2,
		Findings: []check.Finding{
			{File: "a.py", Line: 3, Decl: "load", Message: "Function 'load' is missing a return type annotation."},
			{File: "b.py", Line: 1, Message: "Variable 'X' is not in snake case."},
		},
	}
}

func TestWriteReportText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, "text", sampleReport(), false))

	want := "a.py:3: Function load: Function 'load' is missing a return type annotation.\n" +
		"b.py:1: Variable 'X' is not in snake case.\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteReportTextClean(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, "text", &Report{Files: 1}, false))
	assert.Equal(t, "All checks passed.\n", buf.String())
}

func TestWriteReportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, "json", sampleReport(), false))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2, decoded.Files)
	require.Len(t, decoded.Findings, 2)
	assert.Equal(t, "load", decoded.Findings[0].Decl)
}

func TestWriteReportYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, "yaml", sampleReport(), false))
	assert.Contains(t, buf.String(), "files: 2")
	assert.Contains(t, buf.String(), "file: a.py")

	buf.Reset()
	require.NoError(t, WriteReport(&buf, "yml", sampleReport(), false))
	assert.Contains(t, buf.String(), "files: 2")
}

func TestWriteReportUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReport(&buf, "xml", sampleReport(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
