package yamlint

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrDuplicateFile is returned when a path resolves to a file already
// linted by the same FileLinter.
var ErrDuplicateFile = errors.New("file already linted")

// StdinName is the path that selects standard input.
const StdinName = "-"

// FileReport is the outcome of linting one file.
type FileReport struct {
	Path        string       `json:"path" yaml:"path"`
	Diagnostics []Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

// HasErrors reports whether any diagnostic was produced.
func (r *FileReport) HasErrors() bool {
	return len(r.Diagnostics) > 0
}

// Fatal reports whether the file hit the fatal tab condition.
func (r *FileReport) Fatal() bool {
	return IsFatal(r.Diagnostics)
}

// FileOptions configures file discovery.
type FileOptions struct {
	Extensions []string // matched when walking directories
	BaseDir    string   // base directory for relative paths
}

// FileLinter resolves paths on disk and lints each YAML file once.
type FileLinter struct {
	options FileOptions
	linter  *Linter
	visited map[string]bool
}

// NewFileLinter creates a new file linter
func NewFileLinter() *FileLinter {
	return &FileLinter{
		options: FileOptions{
			Extensions: []string{".yaml", ".yml"},
			BaseDir:    ".",
		},
		linter:  NewLinter(),
		visited: make(map[string]bool),
	}
}

// WithOptions sets file options
func (f *FileLinter) WithOptions(opts FileOptions) *FileLinter {
	if len(opts.Extensions) == 0 {
		opts.Extensions = f.options.Extensions
	}
	if opts.BaseDir == "" {
		opts.BaseDir = "."
	}
	f.options = opts
	return f
}

// WithLinter sets the linter applied to every file
func (f *FileLinter) WithLinter(l *Linter) *FileLinter {
	f.linter = l
	return f
}

// LintFile lints a single file.
func (f *FileLinter) LintFile(filename string) (*FileReport, error) {
	absPath, err := f.resolve(filename)
	if err != nil {
		return nil, err
	}

	if f.visited[absPath] {
		return nil, fmt.Errorf("%s: %w", filename, ErrDuplicateFile)
	}
	f.visited[absPath] = true

	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return f.LintFromReader(filename, file)
}

// ReadLines reads the raw lines of a file resolved against BaseDir.
// The file is closed before ReadLines returns.
func (f *FileLinter) ReadLines(filename string) ([]RawLine, error) {
	absPath, err := f.resolve(filename)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	lines, err := ReadLines(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return lines, nil
}

// LintFromReader lints a document read from r and records it under name.
func (f *FileLinter) LintFromReader(name string, r io.Reader) (*FileReport, error) {
	diags, err := f.linter.LintReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &FileReport{Path: name, Diagnostics: diags}, nil
}

// Expand turns the given paths into the list of files to lint. Directories
// are walked recursively for files with a configured extension; plain files
// are kept as given regardless of extension. Duplicates are dropped.
func (f *FileLinter) Expand(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(name string) error {
		abs, err := f.resolve(name)
		if err != nil {
			return err
		}
		if !seen[abs] {
			seen[abs] = true
			files = append(files, name)
		}
		return nil
	}

	for _, p := range paths {
		if p == StdinName {
			// Standard input can only be read once.
			if !seen[StdinName] {
				seen[StdinName] = true
				files = append(files, p)
			}
			continue
		}

		info, err := os.Stat(f.join(p))
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		if !info.IsDir() {
			if err := add(p); err != nil {
				return nil, err
			}
			continue
		}

		err = filepath.WalkDir(f.join(p), func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !f.matches(path) {
				return nil
			}
			if !filepath.IsAbs(p) {
				// Keep names relative to BaseDir so they resolve the same way again.
				rel, err := filepath.Rel(f.options.BaseDir, path)
				if err != nil {
					return err
				}
				path = rel
			}
			return add(path)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", p, err)
		}
	}

	return files, nil
}

// LintPaths expands paths and lints every file in order.
func (f *FileLinter) LintPaths(paths []string) ([]*FileReport, error) {
	files, err := f.Expand(paths)
	if err != nil {
		return nil, err
	}

	reports := make([]*FileReport, 0, len(files))
	for _, name := range files {
		var report *FileReport
		if name == StdinName {
			report, err = f.LintFromReader(name, os.Stdin)
		} else {
			report, err = f.LintFile(name)
		}
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (f *FileLinter) matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range f.options.Extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

// join resolves a relative path against BaseDir.
func (f *FileLinter) join(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(f.options.BaseDir, name)
}

func (f *FileLinter) resolve(name string) (string, error) {
	abs, err := filepath.Abs(f.join(name))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	return abs, nil
}
