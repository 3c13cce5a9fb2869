package main

import (
	"log"
	"os"

	"github.com/alexflint/go-arg"
)

// Args defines the command-line arguments
type Args struct {
	File    string `arg:"-f,--file" help:"read the structure from FILE instead of stdin ('-' means stdin)"`
	Out     string `arg:"-o,--out" default:"." help:"base directory to create the structure in"`
	Yes     bool   `arg:"-y,--yes" help:"skip the confirmation prompt"`
	DryRun  bool   `arg:"--dry-run" help:"print the plan without creating anything"`
	GitInit bool   `arg:"--git-init" help:"initialize a git repository in the generated root"`
	Marker  string `arg:"--marker" help:"inline comment marker (default '#')"`
	Unit    int    `arg:"--unit" help:"indent unit override (default: auto-detect)"`
	NoColor bool   `arg:"--no-color" help:"disable the styled preview"`
}

func (Args) Description() string {
	return "treeforge creates directories and files from a pasted tree description.\n" +
		"Supports indented listings, tree command output, simple path lists and JSON.\n" +
		"Inline comments are stripped; existing files are never overwritten."
}

// main is our entrypoint: parse args and run the application
func main() {
	var args Args
	arg.MustParse(&args)

	runner, err := NewRunner(args, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	if err := runner.Run(); err != nil {
		log.Fatal(err)
	}
}
