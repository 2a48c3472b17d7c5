// Package osfile implements files.Store on top of the local filesystem.
package osfile

import (
	"context"
	"os"
	"path/filepath"

	"github.com/dumbcommander/dumbcommander/pkg/files"
)

var (
	readDir = readDirUnsorted
	stat    = os.Stat
)

// readDirUnsorted differs from os.ReadDir in that it does not sort by name.
func readDirUnsorted(name string) ([]os.DirEntry, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return f.ReadDir(-1)
}

var _ files.Store = (*Store)(nil)

// Store reads the local filesystem. Relative names resolve against its base.
type Store struct {
	base string
}

// NewStore returns a Store resolving relative names against base, "/" when empty.
func NewStore(base string) *Store {
	if base == "" {
		base = string(filepath.Separator)
	}
	return &Store{base: filepath.Clean(base)}
}

func (s *Store) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.base, name)
}

// ReadDir returns the children of name in the order the OS enumerates them.
func (s *Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return readDir(s.resolve(name))
}

// Stat follows symlinks.
func (s *Store) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return stat(s.resolve(name))
}
