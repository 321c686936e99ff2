package yamlint

import "strings"

const (
	documentStart = "---"
	documentEnd   = "..."
)

// CheckDelimiters scans raw lines for misplaced document markers.
//
// A "---" is flagged only when it is not the first line and no start marker
// has been seen yet. Once a start is recorded every later "---" is accepted,
// so separators between documents pass. A "..." anywhere but the last line
// is flagged, and if any "..." appeared while the last line is something
// else a single end-not-last-line diagnostic is added.
func CheckDelimiters(lines []RawLine) []Diagnostic {
	var (
		diags     []Diagnostic
		startSeen bool
		endSeen   bool
	)

	last := len(lines) - 1
	for i, line := range lines {
		switch strings.TrimSpace(line.Text) {
		case documentStart:
			if i != 0 && !startSeen {
				diags = append(diags, newDiagnostic(line.Index+1, CodeMisplacedStart, msgMisplacedStart))
			}
			startSeen = true
		case documentEnd:
			if i != last {
				diags = append(diags, newDiagnostic(line.Index+1, CodeMisplacedEnd, msgMisplacedEnd))
			}
			endSeen = true
		}
	}

	if endSeen && strings.TrimSpace(lines[last].Text) != documentEnd {
		diags = append(diags, newDiagnostic(lines[last].Index+1, CodeEndNotLastLine, msgEndNotLastLine))
	}

	return diags
}
