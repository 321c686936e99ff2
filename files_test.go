package yamlint

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestFileLinter(dir string) *FileLinter {
	return NewFileLinter().
		WithOptions(FileOptions{BaseDir: dir}).
		WithLinter(NewLinter().WithZeroIndentFallback(false))
}

func TestFileLinter_LintPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "key:\n  - a\n")
	writeFile(t, dir, "b.yml", "- orphan\n")
	writeFile(t, dir, "notes.txt", "- ignored\n")
	writeFile(t, dir, filepath.Join("nested", "c.YAML"), "a: 1\nb: 2\n")

	reports, err := newTestFileLinter(dir).LintPaths([]string{"."})
	require.NoError(t, err)
	require.Len(t, reports, 3)

	assert.Equal(t, "a.yaml", reports[0].Path)
	assert.False(t, reports[0].HasErrors())

	assert.Equal(t, "b.yml", reports[1].Path)
	assert.Equal(t, []Code{CodeOrphanListItem}, codes(reports[1].Diagnostics))

	assert.Equal(t, filepath.Join("nested", "c.YAML"), reports[2].Path)
	assert.Equal(t, []Code{CodeKeyMissingChild}, codes(reports[2].Diagnostics))
	assert.False(t, reports[2].Fatal())
}

func TestFileLinter_ExplicitFileKeepsAnyExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "\t- tabbed\n")

	reports, err := newTestFileLinter(dir).LintPaths([]string{"notes.txt"})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.True(t, reports[0].Fatal())
}

func TestFileLinter_Duplicates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "key:\n  - a\n")

	fl := newTestFileLinter(dir)
	files, err := fl.Expand([]string{"a.yaml", "./a.yaml", filepath.Join(dir, "a.yaml")})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.yaml"}, files)

	_, err = fl.LintFile("a.yaml")
	require.NoError(t, err)

	_, err = fl.LintFile("./a.yaml")
	assert.True(t, errors.Is(err, ErrDuplicateFile))
}

func TestFileLinter_MissingPath(t *testing.T) {
	_, err := newTestFileLinter(t.TempDir()).LintPaths([]string{"missing.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid path")
}

func TestFileLinter_LintFromReader(t *testing.T) {
	report, err := newTestFileLinter(".").LintFromReader(StdinName, strings.NewReader("---\nkey:\n  - a\n"))
	require.NoError(t, err)
	assert.Equal(t, StdinName, report.Path)
	assert.False(t, report.HasErrors())
}

func TestFileLinter_CustomExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "key:\n  - a\n")
	writeFile(t, dir, "b.conf", "key:\n  - a\n")

	fl := NewFileLinter().WithOptions(FileOptions{BaseDir: dir, Extensions: []string{".conf"}})
	files, err := fl.Expand([]string{"."})
	require.NoError(t, err)
	assert.Equal(t, []string{"b.conf"}, files)
}

func TestFileLinter_ExpandStdinOnce(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "key:\n  - a\n")

	files, err := newTestFileLinter(dir).Expand([]string{StdinName, "a.yaml", StdinName})
	require.NoError(t, err)
	assert.Equal(t, []string{StdinName, "a.yaml"}, files)
}

func TestFileLinter_ReadLinesUsesBaseDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, filepath.Join("conf", "a.yaml"), "key:\n  - a\n")

	lines, err := newTestFileLinter(dir).ReadLines(filepath.Join("conf", "a.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Lines("key:", "  - a"), lines)

	_, err = newTestFileLinter(dir).ReadLines("missing.yaml")
	assert.Error(t, err)
}
