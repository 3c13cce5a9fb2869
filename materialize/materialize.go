// Package materialize turns a parsed structure tree into real directories
// and files through a billy filesystem.
package materialize

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"

	"github.com/go-git/go-billy/v5"

	"github.com/treeforge/treeforge/content"
	"github.com/treeforge/treeforge/structure"
)

// Materializer plans and applies filesystem actions for a tree.
type Materializer struct {
	FS     billy.Filesystem
	Gen    *content.Generator
	Logger *slog.Logger
}

// Summary collects the outcome of a run. Per-node failures do not abort
// the run; everything else is still attempted.
type Summary struct {
	Created []string
	Skipped []string
	Failed  []Failure
}

// Failure is one node that could not be created.
type Failure struct {
	Path string
	Err  error
}

// Plan walks the tree rooted at node and produces the ordered actions that
// would materialize it under dest. Content generation happens here, so a
// bad template surfaces before anything is written.
func (m *Materializer) Plan(node *structure.Node, dest string) ([]Action, error) {
	actions := []Action{&Mkdir{FS: m.FS, Path: dest}}

	var visit func(n *structure.Node, base string) error
	visit = func(n *structure.Node, base string) error {
		for _, c := range n.Children {
			p := path.Join(base, c.Name)
			if c.IsDir() {
				actions = append(actions, &Mkdir{FS: m.FS, Path: p})
				if err := visit(c, p); err != nil {
					return err
				}
				continue
			}
			body, err := m.Gen.Generate(c.Name)
			if err != nil {
				return err
			}
			actions = append(actions, &WriteFile{FS: m.FS, Path: p, Content: body})
		}
		return nil
	}
	if err := visit(node, dest); err != nil {
		return nil, err
	}
	return actions, nil
}

// Apply runs every action in order, best-effort. Existing files count as
// skipped, other errors as failures; both leave the remaining actions
// running.
func (m *Materializer) Apply(actions []Action) Summary {
	var sum Summary
	for _, a := range actions {
		err := a.Apply()
		switch {
		case err == nil:
			sum.Created = append(sum.Created, a.Description())
		case errors.Is(err, ErrExists):
			sum.Skipped = append(sum.Skipped, a.Target())
		default:
			if m.Logger != nil {
				m.Logger.Warn("action failed", "action", a.Description(), "err", err)
			}
			sum.Failed = append(sum.Failed, Failure{Path: a.Target(), Err: err})
		}
	}
	return sum
}

// Report prints the run summary, failures last.
func (s Summary) Report(w io.Writer) {
	for _, d := range s.Created {
		fmt.Fprintln(w, d)
	}
	for _, d := range s.Skipped {
		fmt.Fprintf(w, "exists, skipped: %s\n", d)
	}
	if len(s.Failed) > 0 {
		fmt.Fprintf(w, "\n%d entries failed:\n", len(s.Failed))
		for _, f := range s.Failed {
			fmt.Fprintf(w, "  %s: %v\n", f.Path, f.Err)
		}
	}
}

// Err returns a non-nil error when any action failed.
func (s Summary) Err() error {
	if n := len(s.Failed); n > 0 {
		return fmt.Errorf("%d of %d entries could not be created", n, n+len(s.Created)+len(s.Skipped))
	}
	return nil
}
