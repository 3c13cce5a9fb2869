package structure

import (
	"fmt"
	"io"
	"strings"
)

// Options configures parsing. The zero value auto-detects everything.
type Options struct {
	Marker string // comment marker, DefaultMarker if empty
	Unit   int    // indent unit override, 0 = auto-detect
}

// Result is the parser output: the tree, every node path in depth-first
// input order, and any non-fatal warnings raised along the way.
type Result struct {
	Tree     *Tree
	Paths    []string
	Warnings []string
	Format   Format
	Indent   Indent
}

// Parse reads a structure description, detects its format and indentation
// convention, and builds the tree. All errors are detected here, before
// anything touches the filesystem.
func Parse(r io.Reader, opts Options) (*Result, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(raw), opts)
}

// ParseString is Parse for in-memory input.
func ParseString(text string, opts Options) (*Result, error) {
	res := &Result{Format: DetectFormat(text)}

	if res.Format == FormatJSON {
		tree, err := parseJSON(text)
		if err != nil {
			return nil, err
		}
		res.Tree = tree
		res.Paths = tree.Paths()
		return res, nil
	}

	lines, err := Preprocess(strings.NewReader(text), opts.Marker)
	if err != nil {
		return nil, err
	}

	var entries []entry
	switch res.Format {
	case FormatTree:
		entries = treeEntries(lines)
	default:
		res.Indent = DetectIndent(lines)
		if opts.Unit > 0 {
			res.Indent.Unit = opts.Unit
		}
		if res.Indent.Mixed {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("mixed tabs and spaces; each tab normalized to %d columns", res.Indent.Unit))
		}
		entries, err = indentEntries(lines, res.Indent)
		if err != nil {
			return nil, err
		}
	}

	tree, err := build(entries)
	if err != nil {
		return nil, err
	}
	res.Tree = tree
	res.Paths = tree.Paths()
	return res, nil
}

// entry is one line reduced to its nesting depth and content, the common
// currency of the indent and tree front ends.
type entry struct {
	lineNo int
	depth  int
	text   string
}

// indentEntries turns preprocessed lines into depth-tagged entries using
// the detected indent unit. Indentation that does not divide evenly by the
// unit is malformed.
func indentEntries(lines []Line, in Indent) ([]entry, error) {
	entries := make([]entry, 0, len(lines))
	for _, ln := range lines {
		cols := in.Columns(ln.Indent)
		if cols%in.Unit != 0 {
			return nil, parseErrorf(ln.No, "indentation of %d columns is not a multiple of the detected unit %d", cols, in.Unit)
		}
		entries = append(entries, entry{lineNo: ln.No, depth: cols / in.Unit, text: ln.Text})
	}
	return entries, nil
}

// build assembles the tree from depth-tagged entries, keeping a stack of
// open ancestor directories indexed by depth. stack[d] is the parent for
// entries at depth d.
func build(entries []entry) (*Tree, error) {
	root := &Node{Name: ".", Kind: KindDir}
	stack := []*Node{root}
	var prev *Node

	for _, e := range entries {
		if e.depth >= len(stack) {
			if prev != nil && !prev.IsDir() && e.depth == len(stack) {
				return nil, parseErrorf(e.lineNo, "%q is a file and cannot contain %q", prev.Name, e.text)
			}
			return nil, parseErrorf(e.lineNo, "unexpected indent: %q jumps deeper than one level", e.text)
		}
		stack = stack[:e.depth+1]
		parent := stack[e.depth]

		node, err := attach(parent, e)
		if err != nil {
			return nil, err
		}
		if node != nil && node.IsDir() {
			stack = append(stack, node)
		}
		prev = node
	}
	return &Tree{Root: root}, nil
}

// attach adds the entry's node(s) under parent. A single line may carry a
// multi-segment path (admin/index.php); each intermediate segment becomes a
// directory, merged with an existing same-name sibling instead of
// duplicated. Returns the final node.
func attach(parent *Node, e entry) (*Node, error) {
	text := strings.ReplaceAll(e.text, `\`, "/")

	isDir := strings.HasSuffix(text, "/")
	if !isDir && strings.HasSuffix(text, ":") {
		// yaml-like directory marker
		isDir = true
		text = strings.TrimSuffix(text, ":")
	}

	var segs []string
	for _, s := range strings.Split(text, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	if len(segs) == 0 {
		return nil, nil
	}

	for _, seg := range segs[:len(segs)-1] {
		child, err := descend(parent, e.lineNo, seg, KindDir)
		if err != nil {
			return nil, err
		}
		parent = child
	}

	kind := KindFile
	if isDir {
		kind = KindDir
	}
	return descend(parent, e.lineNo, segs[len(segs)-1], kind)
}

// descend finds or creates a child of the given kind. A same-name sibling
// of the other kind means the description contradicts itself: the kind was
// fixed at first encounter and never silently overwritten.
func descend(parent *Node, lineNo int, name string, kind Kind) (*Node, error) {
	if existing := parent.Child(name); existing != nil {
		if existing.Kind != kind {
			return nil, parseErrorf(lineNo, "%q is already a %s, cannot redefine it as a %s", name, existing.Kind, kind)
		}
		return existing, nil
	}
	node := &Node{Name: name, Kind: kind}
	parent.Children = append(parent.Children, node)
	return node, nil
}
