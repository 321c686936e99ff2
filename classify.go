package yamlint

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	keyWithValue = regexp.MustCompile(`^\s*[^\s#:][^:]*:\s*\S`)
	keyNoValue   = regexp.MustCompile(`^\s*[^\s#:][^:]*:\s*$`)
)

// TabError reports a tab character inside a line's leading indentation.
// It is fatal for the whole document.
type TabError struct {
	Line int // 1-based
}

func (e *TabError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, msgTabIndentation)
}

// Classify converts one raw line into a node using the default linter
// settings. ok is false when the line contributes no node.
func Classify(line RawLine) (node Node, ok bool, err error) {
	return NewLinter().Classify(line)
}

// Classify converts one raw line into a node. ok is false for blank,
// comment and unrecognized lines.
func (l *Linter) Classify(line RawLine) (Node, bool, error) {
	text := line.Text
	if hasLeadingTab(text) {
		return Node{}, false, &TabError{Line: line.Index + 1}
	}
	if l.skipEmptyLine(text) || l.skipComment(text) {
		return Node{}, false, nil
	}

	node := Node{
		Indent: l.countIndent(text),
		Line:   line.Index + 1,
	}
	trimmed := strings.TrimSpace(text)

	switch {
	case strings.HasPrefix(trimmed, ListMarker+" "):
		node.Kind = ListItem
		node.Key = ListMarker
		node.Value = strings.TrimSpace(trimmed[len(ListMarker)+1:])
	case keyWithValue.MatchString(text):
		key, value, _ := strings.Cut(trimmed, ":")
		node.Kind = KeyValuePair
		node.Key = strings.TrimSpace(key)
		node.Value = strings.TrimSpace(value)
	case keyNoValue.MatchString(text):
		key, _, _ := strings.Cut(trimmed, ":")
		node.Kind = BareKey
		node.Key = strings.TrimSpace(key)
	default:
		return Node{}, false, nil
	}

	return node, true, nil
}

// hasLeadingTab reports whether a tab occurs in the run of leading whitespace.
func hasLeadingTab(line string) bool {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\t':
			return true
		case ' ':
			continue
		default:
			return false
		}
	}
	return false
}

// countLeadingSpaces counts the spaces a line starts with.
func countLeadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}

// countIndent applies the zero-indent fallback on top of countLeadingSpaces.
func (l *Linter) countIndent(line string) int {
	n := countLeadingSpaces(line)
	if n == 0 && l.zeroIndentFallback {
		return 1
	}
	return n
}
