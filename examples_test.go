package yamlint

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLintFixtureFiles(t *testing.T) {
	fixturesDir := "testdata"

	fixtures := []struct {
		file  string
		codes []Code
		lines []int
	}{
		{file: "clean.yaml"},
		{
			file:  "structure.yaml",
			codes: []Code{CodeKeyMissingChild, CodeIndentationNotEven},
			lines: []int{3, 5},
		},
		{
			file:  "tabs.yaml",
			codes: []Code{CodeTabIndentation},
			lines: []int{2},
		},
		{
			file:  "delimiters.yaml",
			codes: []Code{CodeMisplacedStart, CodeMisplacedEnd, CodeEndNotLastLine},
			lines: []int{3, 6, 8},
		},
	}

	linter := NewLinter().WithZeroIndentFallback(false)

	for _, fixture := range fixtures {
		path := filepath.Join(fixturesDir, fixture.file)
		t.Run(fixture.file, func(t *testing.T) {
			file, err := os.Open(path)
			if err != nil {
				t.Fatalf("Fixture file not found: %s", path)
			}
			defer file.Close()

			diags, err := linter.LintReader(file)
			if err != nil {
				t.Fatalf("Failed to lint %s: %v", fixture.file, err)
			}

			if len(diags) != len(fixture.codes) {
				t.Fatalf("Expected %d diagnostics, got %d: %+v", len(fixture.codes), len(diags), diags)
			}
			for i, d := range diags {
				if d.Code != fixture.codes[i] {
					t.Errorf("diagnostic %d: expected code %s, got %s", i, fixture.codes[i], d.Code)
				}
				if d.Line != fixture.lines[i] {
					t.Errorf("diagnostic %d: expected line %d, got %d", i, fixture.lines[i], d.Line)
				}
			}

			t.Logf("Linted %s with %d diagnostics", fixture.file, len(diags))
		})
	}
}
