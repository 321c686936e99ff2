// Package yamlint defines the core data structures for structural linting.
package yamlint

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind identifies what a classified line represents.
type Kind int

const (
	_ Kind = iota // zero value is reserved for "no node"

	ListItem
	KeyValuePair
	BareKey
)

// IsKey reports whether the node introduces a key, with or without an inline value.
func (k Kind) IsKey() bool {
	return k == KeyValuePair || k == BareKey
}

// ListMarker is the key recorded for list item nodes.
const ListMarker = "-"

// RawLine is a single line of text and its 0-based position in the document.
type RawLine struct {
	Index int
	Text  string
}

// Node is the semantic unit derived from one RawLine.
type Node struct {
	Indent int
	Kind   Kind
	Key    string
	Value  string
	Line   int // 1-based source line
}

// Tree is the ordered sequence of nodes built from a document.
// Despite the name it is flat; relationships come from adjacency.
type Tree []Node

// Code names the rule a diagnostic was produced by.
type Code string

const (
	CodeTabIndentation     Code = "tab-indentation"
	CodeIndentationNotEven Code = "indentation-not-even"
	CodeOrphanListItem     Code = "orphan-list-item"
	CodeKeyMissingChild    Code = "key-missing-child"
	CodeMisplacedStart     Code = "misplaced-start"
	CodeMisplacedEnd       Code = "misplaced-end"
	CodeEndNotLastLine     Code = "end-not-last-line"
)

// Severity of a diagnostic.
type Severity string

const (
	SeverityError Severity = "error"
	SeverityFatal Severity = "fatal"
)

// Diagnostic is a single lint finding.
type Diagnostic struct {
	Line     int      `json:"line" yaml:"line"`
	Code     Code     `json:"code" yaml:"code"`
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
}

const (
	msgTabIndentation     = "Tabs are not allowed in YAML"
	msgIndentationNotEven = "Incorrect indentation level. Indentation must be a multiple of 2."
	msgOrphanListItem     = "List item must be inside a valid list or under a parent key."
	msgKeyMissingChild    = "Key does not have a child. A key must be followed by a nested value or a list."
	msgMisplacedStart     = "Misplaced '---'. It should only appear at the start of the file or to separate documents."
	msgMisplacedEnd       = "Misplaced '...'. It should only appear at the end of the file."
	msgEndNotLastLine     = "'...' should be the last line of the file."
)

func newDiagnostic(line int, code Code, message string) Diagnostic {
	return Diagnostic{Line: line, Code: code, Severity: SeverityError, Message: message}
}
