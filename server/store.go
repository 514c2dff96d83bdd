package server

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileStore is the serving-root collaborator: it resolves relative names to
// raw bytes and reports failures distinguishably (not-found, permission,
// other I/O) so the router can map them onto the error taxonomy.
type FileStore interface {
	Read(name string) ([]byte, error)
	Write(name string, content []byte) error
}

// Dir serves files from a root directory.
type Dir struct {
	root string
}

var _ FileStore = Dir{}

func NewDir(root string) Dir { return Dir{root: root} }

func (d Dir) Read(name string) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(d.root, name))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q", name)
	}
	return b, nil
}

func (d Dir) Write(name string, content []byte) error {
	if err := os.WriteFile(filepath.Join(d.root, name), content, 0o644); err != nil {
		return errors.Wrapf(err, "writing %q", name)
	}
	return nil
}
