package yamlint

import (
	"bufio"
	"io"
	"strings"
)

// maxLineSize bounds a single line; bufio's 64 KiB default is too small for
// inlined certificates and similar long scalars.
const maxLineSize = 1024 * 1024

// Scanner wraps a bufio.Scanner with line numbering.
type Scanner struct {
	*bufio.Scanner
	lineNum int
}

// NewScanner creates a new Scanner from an io.Reader.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Scanner{
		Scanner: s,
		lineNum: 0,
	}
}

// NextLine advances the scanner and returns the current line.
func (s *Scanner) NextLine() (RawLine, bool) {
	if !s.Scan() {
		return RawLine{Index: s.lineNum}, false
	}
	line := RawLine{Index: s.lineNum, Text: s.Text()}
	s.lineNum++
	return line, true
}

// ReadLines materializes every line of r.
func ReadLines(r io.Reader) ([]RawLine, error) {
	scanner := NewScanner(r)
	var lines []RawLine
	for {
		line, ok := scanner.NextLine()
		if !ok {
			break
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

// SplitLines turns an in-memory document into raw lines.
// A trailing newline does not produce an extra empty line.
func SplitLines(s string) []RawLine {
	if s == "" {
		return nil
	}
	texts := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	lines := make([]RawLine, len(texts))
	for i, text := range texts {
		lines[i] = RawLine{Index: i, Text: text}
	}
	return lines
}

// Lines wraps plain strings as raw lines.
func Lines(texts ...string) []RawLine {
	lines := make([]RawLine, len(texts))
	for i, text := range texts {
		lines[i] = RawLine{Index: i, Text: text}
	}
	return lines
}
