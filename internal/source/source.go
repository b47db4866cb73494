// Package source discovers migration artifacts in a directory tree: the
// single .surql files and paired up/down folders produced by smg. It does
// not execute anything or track applied state; it only lists entries and
// loads their contents, in apply order, for downstream tooling.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// Kind describes how a migration is stored.
type Kind int

const (
	// KindFile is a single .surql file containing the up migration only.
	KindFile Kind = iota
	// KindPaired is a folder containing up.surql and down.surql.
	KindPaired
)

func (k Kind) String() string {
	if k == KindPaired {
		return "paired"
	}
	return "file"
}

// Migration is one entry discovered in a migration source. Name is the
// file name for single migrations or the folder name for paired ones.
type Migration struct {
	Name string
	Kind Kind
}

// Source lists migrations and loads their contents. The order returned by
// List is the order migrations should be applied in.
type Source interface {
	// List returns the available migrations in apply order.
	List() ([]Migration, error)

	// Up returns the up migration contents.
	Up(m Migration) (string, error)

	// Down returns the down migration contents. The bool reports whether
	// a down migration exists; single-file migrations never have one.
	Down(m Migration) (string, bool, error)
}

// FSSource reads migrations from any fs.FS, which covers both real
// directories (via os.DirFS) and assets embedded with embed.FS.
type FSSource struct {
	fsys fs.FS
}

// NewFS creates a source over fsys. Migrations are expected at the root
// of the filesystem.
func NewFS(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// NewDir creates a source reading the filesystem directory dir.
func NewDir(dir string) *FSSource {
	return NewFS(os.DirFS(dir))
}

// List enumerates entries sorted by name, skipping anything that doesn't
// start with an ASCII digit. Files map to KindFile, folders to KindPaired.
func (s *FSSource) List() ([]Migration, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migration source: %w", err)
	}

	var migrations []Migration
	for _, e := range entries {
		name := e.Name()
		if len(name) == 0 || name[0] < '0' || name[0] > '9' {
			continue
		}
		kind := KindFile
		if e.IsDir() {
			kind = KindPaired
		}
		migrations = append(migrations, Migration{Name: name, Kind: kind})
	}
	return migrations, nil
}

// Up loads the up migration: the file itself for KindFile, up.surql inside
// the folder for KindPaired.
func (s *FSSource) Up(m Migration) (string, error) {
	p := m.Name
	if m.Kind == KindPaired {
		p = path.Join(m.Name, "up.surql")
	}
	content, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return "", fmt.Errorf("failed to read up migration %s: %w", m.Name, err)
	}
	return string(content), nil
}

// Down loads the down migration for paired entries. Single-file migrations
// are up-only, as are paired folders missing down.surql.
func (s *FSSource) Down(m Migration) (string, bool, error) {
	if m.Kind != KindPaired {
		return "", false, nil
	}
	content, err := fs.ReadFile(s.fsys, path.Join(m.Name, "down.surql"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read down migration %s: %w", m.Name, err)
	}
	return string(content), true, nil
}
