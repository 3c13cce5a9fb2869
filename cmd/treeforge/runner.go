package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/mattn/go-isatty"

	"github.com/treeforge/treeforge"
	"github.com/treeforge/treeforge/content"
	"github.com/treeforge/treeforge/materialize"
	"github.com/treeforge/treeforge/structure"
)

// fallbackRoot is used when the description has no single top-level
// directory to name the target after.
const fallbackRoot = "generated_project"

// Runner encapsulates the state and behavior for the CLI
type Runner struct {
	Args   Args
	Config *treeforge.Config
	Stdin  *os.File
	Stdout io.Writer
	Logger *slog.Logger
}

// NewRunner loads the config, applies flag overrides and initializes a
// Runner.
func NewRunner(args Args, stdin *os.File, stdout io.Writer) (*Runner, error) {
	cfg, err := treeforge.LoadConfig(treeforge.ConfigFile)
	if err != nil {
		return nil, err
	}
	if args.Marker == "" {
		args.Marker = cfg.Marker
	}
	if args.Unit == 0 {
		args.Unit = cfg.Unit
	}
	args.GitInit = args.GitInit || cfg.GitInit
	args.NoColor = args.NoColor || cfg.NoColor

	return &Runner{
		Args:   args,
		Config: cfg,
		Stdin:  stdin,
		Stdout: stdout,
		Logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}, nil
}

// Run executes the whole pipeline: read, parse, preview, confirm, apply.
func (r *Runner) Run() error {
	text, err := r.readInput()
	if err != nil {
		return err
	}

	res, err := structure.ParseString(text, structure.Options{
		Marker: r.Args.Marker,
		Unit:   r.Args.Unit,
	})
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		r.Logger.Warn(w)
	}

	if res.Tree.Empty() {
		fmt.Fprintln(r.Stdout, "Nothing to create.")
		return nil
	}

	// The sole top-level directory names the target root on disk.
	planRoot := res.Tree.Root
	dest := fallbackRoot
	if sole := res.Tree.SoleRoot(); sole != nil {
		planRoot = sole
		dest = sole.Name
	}
	destPath := filepath.Join(r.Args.Out, dest)

	gen, err := content.New(r.Config.Templates)
	if err != nil {
		return err
	}
	m := &materialize.Materializer{
		FS:     osfs.New(r.Args.Out),
		Gen:    gen,
		Logger: r.Logger,
	}
	actions, err := m.Plan(planRoot, dest)
	if err != nil {
		return err
	}

	if r.Args.DryRun {
		fmt.Fprintf(r.Stdout, "Would create under %s:\n\n", destPath)
		for _, a := range actions {
			fmt.Fprintln(r.Stdout, a.Description())
		}
		return nil
	}

	ok, err := r.confirm(res.Tree, destPath)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(r.Stdout, "Aborted.")
		return nil
	}

	sum := m.Apply(actions)
	sum.Report(r.Stdout)

	if r.Args.GitInit && len(sum.Failed) == 0 {
		if err := initRepo(destPath); err != nil {
			return fmt.Errorf("failed to init git repository: %w", err)
		}
		fmt.Fprintf(r.Stdout, "Initialized git repository in %s\n", destPath)
	}
	return sum.Err()
}

// readInput picks the structure source: an input file, interactive paste,
// or piped stdin.
func (r *Runner) readInput() (string, error) {
	if r.Args.File != "" && r.Args.File != "-" {
		data, err := os.ReadFile(r.Args.File)
		if err != nil {
			return "", fmt.Errorf("failed to read input file %s: %w", r.Args.File, err)
		}
		return string(data), nil
	}

	if r.Args.File == "" && isatty.IsTerminal(r.Stdin.Fd()) {
		fmt.Fprintln(r.Stdout, "Paste your structure below (end with two empty lines):")
		return CollectStructure(r.Stdin)
	}

	data, err := io.ReadAll(r.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// confirm shows the preview and asks for a go-ahead. --yes skips it; a
// plain prompt replaces the TUI when not attached to a terminal.
func (r *Runner) confirm(tree *structure.Tree, destPath string) (bool, error) {
	if r.Args.Yes {
		return true, nil
	}

	outline := styledOutline(tree, r.Args.NoColor)
	if isatty.IsTerminal(r.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()) {
		return confirmInteractive(outline, destPath)
	}

	fmt.Fprintf(r.Stdout, "Will create under %s:\n\n%s\n", destPath, strings.TrimRight(outline, "\n"))
	return askConfirm(), nil
}
