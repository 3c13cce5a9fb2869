package structure

import "strings"

// Outline renders the tree as an indented textual listing in input order,
// directories marked with a trailing slash. Pure formatting, used for the
// pre-materialization preview.
func Outline(t *Tree) string {
	var sb strings.Builder
	if t.Root != nil {
		outlineNode(&sb, t.Root, 0)
	}
	return sb.String()
}

func outlineNode(sb *strings.Builder, n *Node, depth int) {
	for _, c := range n.Children {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(c.Name)
		if c.IsDir() {
			sb.WriteString("/")
		}
		sb.WriteString("\n")
		if c.IsDir() {
			outlineNode(sb, c, depth+1)
		}
	}
}
