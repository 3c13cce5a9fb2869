package structure

import "path"

// Kind distinguishes directory nodes from file nodes.
type Kind int

const (
	KindDir Kind = iota
	KindFile
)

func (k Kind) String() string {
	if k == KindDir {
		return "directory"
	}
	return "file"
}

// Node is one planned filesystem entry. Directory nodes own their children
// in input order; file nodes never have children.
type Node struct {
	Name     string
	Kind     Kind
	Children []*Node
}

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool {
	return n.Kind == KindDir
}

// Child returns the child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Tree is the parsed structure. Root is a synthetic "." directory; the
// entries the user described are its children.
type Tree struct {
	Root *Node
}

// Empty reports whether the tree has nothing to create.
func (t *Tree) Empty() bool {
	return t.Root == nil || len(t.Root.Children) == 0
}

// SoleRoot returns the single top-level directory when the whole structure
// lives under one directory, which then becomes the target root on disk.
func (t *Tree) SoleRoot() *Node {
	if t.Root != nil && len(t.Root.Children) == 1 && t.Root.Children[0].IsDir() {
		return t.Root.Children[0]
	}
	return nil
}

// Walk visits every node below the root in depth-first input order, passing
// the slash-separated path relative to the root.
func (t *Tree) Walk(fn func(p string, n *Node) error) error {
	if t.Root == nil {
		return nil
	}
	return walk(t.Root, "", fn)
}

func walk(n *Node, prefix string, fn func(p string, n *Node) error) error {
	for _, c := range n.Children {
		p := path.Join(prefix, c.Name)
		if err := fn(p, c); err != nil {
			return err
		}
		if c.IsDir() {
			if err := walk(c, p, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Paths returns every node path in depth-first input order.
func (t *Tree) Paths() []string {
	var paths []string
	_ = t.Walk(func(p string, n *Node) error {
		paths = append(paths, p)
		return nil
	})
	return paths
}
