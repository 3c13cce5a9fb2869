package main

import (
	"errors"

	git "github.com/go-git/go-git/v5"
)

// initRepo initializes a git repository in the generated root. An existing
// repository is fine, matching the tool's skip-existing behavior.
func initRepo(path string) error {
	_, err := git.PlainInit(path, false)
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return nil
	}
	return err
}
