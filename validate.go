package yamlint

// Validate walks the tree once and reports indentation, orphan list item
// and childless key violations against each node's source line.
func Validate(tree Tree) []Diagnostic {
	return validate(tree, sourceLine)
}

type lineFunc func(idx int, node Node) int

func sourceLine(_ int, node Node) int { return node.Line }

// legacyTreeLine reproduces the historical numbering, which counted tree
// positions rather than source lines.
func legacyTreeLine(idx int, _ Node) int { return idx + 2 }

func validate(tree Tree, lineOf lineFunc) []Diagnostic {
	var diags []Diagnostic

	for idx, node := range tree {
		line := lineOf(idx, node)

		if node.Indent%2 != 0 {
			diags = append(diags, newDiagnostic(line, CodeIndentationNotEven, msgIndentationNotEven))
		}

		switch {
		case node.Kind == ListItem:
			if !hasListParent(tree, idx) {
				diags = append(diags, newDiagnostic(line, CodeOrphanListItem, msgOrphanListItem))
			}
		case node.Kind.IsKey():
			next, ok := tree.Next(idx)
			// The last node has nothing to look ahead to.
			if ok && next.Kind != ListItem {
				diags = append(diags, newDiagnostic(line, CodeKeyMissingChild, msgKeyMissingChild))
			}
		}
	}

	return diags
}

// hasListParent reports whether the node before idx may own a list item.
func hasListParent(tree Tree, idx int) bool {
	prev, ok := tree.Prev(idx)
	if !ok {
		return false
	}
	return prev.Kind == ListItem || prev.Kind.IsKey()
}
