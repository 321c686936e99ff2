package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/uplang/yamlint"
)

func sampleReports() []*yamlint.FileReport {
	return []*yamlint.FileReport{
		{Path: "clean.yaml"},
		{Path: "bad.yaml", Diagnostics: yamlint.NewLinter().WithZeroIndentFallback(false).LintString("a: 1\nb: 2\n")},
		{Path: "tabs.yaml", Diagnostics: yamlint.NewLinter().LintString("\tx: 1\n")},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleReports())
	assert.Equal(t, Summary{Files: 3, Diagnostics: 2, Fatal: 1}, s)
	assert.True(t, s.HasErrors())
	assert.False(t, Summarize(nil).HasErrors())
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatText, sampleReports()))

	want := "clean.yaml: no errors found\n" +
		"bad.yaml:1: error [key-missing-child] Key does not have a child. A key must be followed by a nested value or a list.\n" +
		"tabs.yaml:1: fatal [tab-indentation] Tabs are not allowed in YAML\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, sampleReports()))

	var got struct {
		Files []struct {
			Path        string               `json:"path"`
			Diagnostics []yamlint.Diagnostic `json:"diagnostics"`
		} `json:"files"`
		Summary Summary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	require.Len(t, got.Files, 3)
	assert.NotNil(t, got.Files[0].Diagnostics, "clean files encode an empty list")
	assert.Empty(t, got.Files[0].Diagnostics)
	assert.Equal(t, yamlint.CodeKeyMissingChild, got.Files[1].Diagnostics[0].Code)
	assert.Equal(t, Summary{Files: 3, Diagnostics: 2, Fatal: 1}, got.Summary)
	assert.Contains(t, buf.String(), `"diagnostics": []`)
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatYAML, sampleReports()))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))

	summary, ok := got["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 2, summary["diagnostics"])
	assert.Contains(t, buf.String(), "code: tab-indentation")
}

func TestRenderUnknownFormat(t *testing.T) {
	assert.Error(t, Render(&bytes.Buffer{}, Format("xml"), nil))
}
