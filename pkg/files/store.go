package files

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=files

// Store is the filesystem accessor the listing model reads through.
type Store interface {
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	Stat(ctx context.Context, name string) (os.FileInfo, error)
}

// Parent returns dirPath with its last segment removed.
// The filesystem root is its own parent.
func Parent(dirPath string) string {
	if dirPath == "" {
		return ""
	}
	return filepath.Dir(filepath.Clean(dirPath))
}

// IsRoot reports whether dirPath has no parent.
func IsRoot(dirPath string) bool {
	return dirPath != "" && Parent(dirPath) == filepath.Clean(dirPath)
}

func DirExists(ctx context.Context, store Store, dirPath string) (bool, error) {
	info, err := store.Stat(ctx, dirPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
