package materialize

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// ErrExists reports that a file action was skipped because the target is
// already on disk. Existing files are never overwritten.
var ErrExists = errors.New("already exists")

// Action is a single filesystem operation that can be verified and applied.
type Action interface {
	Description() string
	Target() string
	Verify() error
	Apply() error
}

// Mkdir creates a directory, idempotently.
type Mkdir struct {
	FS   billy.Filesystem
	Path string
}

func (a *Mkdir) Description() string {
	return "mkdir " + a.Path
}

func (a *Mkdir) Target() string {
	return a.Path
}

func (a *Mkdir) Verify() error {
	info, err := a.FS.Stat(a.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", a.Path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("a file already exists at %s", a.Path)
	}
	return nil
}

func (a *Mkdir) Apply() error {
	if err := a.Verify(); err != nil {
		return err
	}
	if err := a.FS.MkdirAll(a.Path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", a.Path, err)
	}
	return nil
}

// WriteFile creates a file with its generated starter content. If the file
// already exists it is left untouched and Apply returns ErrExists.
type WriteFile struct {
	FS      billy.Filesystem
	Path    string
	Content string
}

func (a *WriteFile) Description() string {
	return "write " + a.Path
}

func (a *WriteFile) Target() string {
	return a.Path
}

func (a *WriteFile) Verify() error {
	info, err := a.FS.Stat(a.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", a.Path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("a directory already exists at %s", a.Path)
	}
	return nil
}

func (a *WriteFile) Apply() error {
	if err := a.Verify(); err != nil {
		return err
	}
	if _, err := a.FS.Stat(a.Path); err == nil {
		return fmt.Errorf("%s: %w", a.Path, ErrExists)
	}
	if err := a.FS.MkdirAll(path.Dir(a.Path), 0755); err != nil {
		return fmt.Errorf("failed to create parent of %s: %w", a.Path, err)
	}
	if err := util.WriteFile(a.FS, a.Path, []byte(a.Content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", a.Path, err)
	}
	return nil
}
