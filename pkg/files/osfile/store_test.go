package osfile

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dumbcommander/dumbcommander/pkg/files"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "/", NewStore("").base)
	assert.Equal(t, "/srv/data", NewStore("/srv/data/").base)
}

func TestStore_ReadDir(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "a.txt"), []byte("0123456789"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "b"), 0o755))
	names := func(entries []os.DirEntry) (result []string) {
		for _, e := range entries {
			result = append(result, e.Name())
		}
		return result
	}

	t.Run("absolute", func(t *testing.T) {
		entries, err := NewStore("/").ReadDir(context.Background(), tempDir)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a.txt", "b"}, names(entries))
	})

	t.Run("relative_to_base", func(t *testing.T) {
		entries, err := NewStore(filepath.Dir(tempDir)).ReadDir(context.Background(), filepath.Base(tempDir))
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a.txt", "b"}, names(entries))
	})

	t.Run("context_cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		entries, err := NewStore("/").ReadDir(ctx, tempDir)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, entries)
	})

	t.Run("read_error", func(t *testing.T) {
		orig := readDir
		defer func() { readDir = orig }()
		readDir = func(name string) ([]os.DirEntry, error) {
			assert.Equal(t, tempDir, name)
			return nil, errors.New("permission denied")
		}
		_, err := NewStore("/").ReadDir(context.Background(), tempDir)
		assert.EqualError(t, err, "permission denied")
	})
}

func TestStore_Stat(t *testing.T) {
	s := NewStore("/")
	tempDir := t.TempDir()

	info, err := s.Stat(context.Background(), tempDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = s.Stat(context.Background(), filepath.Join(tempDir, "missing"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Stat(ctx, tempDir)
	assert.ErrorIs(t, err, context.Canceled)
}

// The scenario below runs the listing model against the real filesystem.
func TestLoad_LocalDirectory(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "a.txt"), []byte("0123456789"), 0o640))
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "b"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "b", "nested.txt"), []byte("x"), 0o644))

	listing, err := files.Load(context.Background(), NewStore("/"), tempDir)
	require.NoError(t, err)
	require.Equal(t, 2, listing.Len())

	byName := make(map[string]files.Entry)
	for _, e := range listing.Entries() {
		byName[e.Name()] = e
	}
	require.Contains(t, byName, "a.txt")
	require.Contains(t, byName, "b")

	a := byName["a.txt"]
	assert.False(t, a.IsDir())
	assert.Equal(t, filepath.Join(tempDir, "a.txt"), a.Path())
	size, ok := a.Size()
	assert.True(t, ok)
	assert.Equal(t, int64(10), size)

	b := byName["b"]
	assert.True(t, b.IsDir())
	_, ok = b.Size()
	assert.False(t, ok)

	if runtime.GOOS != "windows" {
		perm, ok := a.Perm()
		assert.True(t, ok)
		assert.Equal(t, "rw-r-----", perm.String())
	}
}

func TestLoad_KeepsEnumerationOrder(t *testing.T) {
	tempDir := t.TempDir()
	for _, name := range []string{"zeta", "mid", "alpha", "beta", "omega"} {
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, name), nil, 0o644))
	}
	f, err := os.Open(tempDir)
	require.NoError(t, err)
	raw, err := f.ReadDir(-1)
	require.NoError(t, f.Close())
	require.NoError(t, err)
	var expected []string
	for _, e := range raw {
		expected = append(expected, e.Name())
	}

	listing, err := files.Load(context.Background(), NewStore("/"), tempDir)
	require.NoError(t, err)
	var actual []string
	for _, e := range listing.Entries() {
		actual = append(actual, e.Name())
	}
	assert.Equal(t, expected, actual)
}

func TestLoad_LocalSymlinkToDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "target")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.Symlink(target, filepath.Join(tempDir, "link")))

	listing, err := files.Load(context.Background(), NewStore("/"), tempDir)
	require.NoError(t, err)
	for _, e := range listing.Entries() {
		assert.True(t, e.IsDir(), e.Name())
	}
}

func TestLoad_LocalErrors(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "file.txt")
	require.NoError(t, os.WriteFile(filePath, nil, 0o644))
	store := NewStore("/")

	_, err := files.Load(context.Background(), store, filepath.Join(tempDir, "missing"))
	var listingErr *files.ListingError
	require.ErrorAs(t, err, &listingErr)
	assert.Equal(t, files.NotFound, listingErr.Kind)

	_, err = files.Load(context.Background(), store, filePath)
	require.ErrorAs(t, err, &listingErr)
	assert.Equal(t, files.NotADirectory, listingErr.Kind)
}
