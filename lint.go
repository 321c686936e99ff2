package yamlint

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Linter runs the structural and delimiter checks over a document.
// A Linter holds no per-document state and may be reused.
type Linter struct {
	zeroIndentFallback bool
	legacyLineNumbers  bool
	skipEmptyLine      func(string) bool
	skipComment        func(string) bool
	logger             *zap.SugaredLogger
}

// NewLinter creates a new Linter with default configuration.
func NewLinter() *Linter {
	return &Linter{
		zeroIndentFallback: true,
		skipEmptyLine:      func(line string) bool { return strings.TrimSpace(line) == "" },
		skipComment:        func(line string) bool { return strings.HasPrefix(strings.TrimSpace(line), "#") },
		logger:             zap.NewNop().Sugar(),
	}
}

// WithZeroIndentFallback controls whether unindented lines count as
// indent 1. It is on by default, which keeps top-level nodes odd.
func (l *Linter) WithZeroIndentFallback(on bool) *Linter {
	l.zeroIndentFallback = on
	return l
}

// WithLegacyLineNumbers reports structural diagnostics at tree position + 2
// and tab errors at line index + 2, as older releases did.
func (l *Linter) WithLegacyLineNumbers(on bool) *Linter {
	l.legacyLineNumbers = on
	return l
}

// WithSkipComment configures the comment skip function.
func (l *Linter) WithSkipComment(fn func(string) bool) *Linter {
	l.skipComment = fn
	return l
}

// WithLogger configures debug tracing.
func (l *Linter) WithLogger(logger *zap.SugaredLogger) *Linter {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	l.logger = logger
	return l
}

// Lint runs both passes over lines. Delimiter diagnostics come first,
// followed by structural ones. A tab in leading indentation yields a single
// fatal diagnostic and nothing else.
func (l *Linter) Lint(lines []RawLine) []Diagnostic {
	tree, err := l.Build(lines)
	if err != nil {
		l.logger.Debugw("aborting structural analysis", "error", err)
		return []Diagnostic{l.fatalDiagnostic(err)}
	}

	diags := CheckDelimiters(lines)

	lineOf := sourceLine
	if l.legacyLineNumbers {
		lineOf = legacyTreeLine
	}
	diags = append(diags, validate(tree, lineOf)...)

	l.logger.Debugw("linted document", "lines", len(lines), "nodes", len(tree), "diagnostics", len(diags))
	return diags
}

// LintString lints an in-memory document.
func (l *Linter) LintString(s string) []Diagnostic {
	return l.Lint(SplitLines(s))
}

// LintReader reads every line of r and lints them.
func (l *Linter) LintReader(r io.Reader) ([]Diagnostic, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return l.Lint(lines), nil
}

// fatalDiagnostic converts a build failure into the single diagnostic
// reported for the document. Errors other than TabError are pinned to the
// first line and keep their own message.
func (l *Linter) fatalDiagnostic(err error) Diagnostic {
	var tabErr *TabError
	if !errors.As(err, &tabErr) {
		return Diagnostic{
			Line:     1,
			Code:     CodeTabIndentation,
			Severity: SeverityFatal,
			Message:  err.Error(),
		}
	}

	line := tabErr.Line
	if l.legacyLineNumbers {
		line++
	}
	return Diagnostic{
		Line:     line,
		Code:     CodeTabIndentation,
		Severity: SeverityFatal,
		Message:  msgTabIndentation,
	}
}

// Lint lints lines with the default settings.
func Lint(lines []RawLine) []Diagnostic {
	return NewLinter().Lint(lines)
}

// IsFatal reports whether diags hold the fatal tab condition.
func IsFatal(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityFatal {
			return true
		}
	}
	return false
}
