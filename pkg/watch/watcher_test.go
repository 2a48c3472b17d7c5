package watch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type change struct {
	key, dir string
}

func newTestWatcher(t *testing.T) (*Watcher, chan change) {
	t.Helper()
	changes := make(chan change, 10)
	w, err := New(func(key, dir string) {
		changes <- change{key, dir}
	}, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = w.Close()
	})
	return w, changes
}

func waitChange(t *testing.T, changes chan change) change {
	t.Helper()
	select {
	case c := <-changes:
		return c
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
		return change{}
	}
}

func TestWatcher_ReportsChanges(t *testing.T) {
	w, changes := newTestWatcher(t)
	dir := t.TempDir()
	require.NoError(t, w.Watch("left", dir))

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "f.txt"), []byte{byte(i)}, 0o644))
	}
	c := waitChange(t, changes)
	assert.Equal(t, change{"left", filepath.Clean(dir)}, c)
}

func TestWatcher_SwitchDirectory(t *testing.T) {
	w, changes := newTestWatcher(t)
	first, second := t.TempDir(), t.TempDir()
	require.NoError(t, w.Watch("right", first))
	require.NoError(t, w.Watch("right", second))
	require.NoError(t, w.Watch("right", second))

	require.NoError(t, os.WriteFile(filepath.Join(first, "ignored.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(second, "seen.txt"), nil, 0o644))

	c := waitChange(t, changes)
	assert.Equal(t, "right", c.key)
	assert.Equal(t, filepath.Clean(second), c.dir)
}

func TestWatcher_SharedDirectory(t *testing.T) {
	w, changes := newTestWatcher(t)
	dir := t.TempDir()
	require.NoError(t, w.Watch("left", dir))
	require.NoError(t, w.Watch("right", dir))

	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	keys := map[string]bool{}
	keys[waitChange(t, changes).key] = true
	keys[waitChange(t, changes).key] = true
	assert.Equal(t, map[string]bool{"left": true, "right": true}, keys)
}

func TestWatcher_Errors(t *testing.T) {
	t.Run("missing_dir", func(t *testing.T) {
		w, _ := newTestWatcher(t)
		assert.Error(t, w.Watch("left", filepath.Join(t.TempDir(), "missing")))
	})

	t.Run("closed", func(t *testing.T) {
		w, _ := newTestWatcher(t)
		assert.NoError(t, w.Close())
		assert.NoError(t, w.Close())
		assert.Error(t, w.Watch("left", t.TempDir()))
	})

	t.Run("new_fails", func(t *testing.T) {
		orig := newFsWatcher
		defer func() { newFsWatcher = orig }()
		newFsWatcher = func() (*fsnotify.Watcher, error) {
			return nil, errors.New("too many open files")
		}
		_, err := New(nil)
		assert.Error(t, err)
	})
}
