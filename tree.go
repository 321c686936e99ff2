package yamlint

// Build converts a document into its indent tree using the default settings.
func Build(lines []RawLine) (Tree, error) {
	return NewLinter().Build(lines)
}

// Build classifies every line and keeps the non-skip results in order.
// The first tab violation aborts the build; no partial tree is returned.
func (l *Linter) Build(lines []RawLine) (Tree, error) {
	tree := make(Tree, 0, len(lines))
	for _, line := range lines {
		node, ok, err := l.Classify(line)
		if err != nil {
			return nil, err
		}
		if ok {
			tree = append(tree, node)
		}
	}
	return tree, nil
}

// Prev returns the node before position i, if any.
func (t Tree) Prev(i int) (Node, bool) {
	if i <= 0 || i > len(t) {
		return Node{}, false
	}
	return t[i-1], true
}

// Next returns the node after position i, if any.
func (t Tree) Next(i int) (Node, bool) {
	if i < 0 || i+1 >= len(t) {
		return Node{}, false
	}
	return t[i+1], true
}
