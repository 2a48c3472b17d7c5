package hotlist

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLock sync.Mutex

func withFilePath(t *testing.T, p string) {
	t.Helper()
	testLock.Lock()
	old, oldMarshal := filePath, yamlMarshal
	filePath = p
	t.Cleanup(func() {
		filePath, yamlMarshal = old, oldMarshal
		testLock.Unlock()
	})
}

func TestGet_CreatesDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sub", "hotlist.yaml")
	withFilePath(t, p)

	items, err := Get()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "~", items[0].Path)
	assert.Equal(t, 'h', items[0].Shortcut)
	assert.Equal(t, "/", items[1].Path)

	_, err = os.Stat(p)
	assert.NoError(t, err)
}

func TestGet_ExistingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "hotlist.yaml")
	withFilePath(t, p)

	t.Run("empty", func(t *testing.T) {
		require.NoError(t, os.WriteFile(p, nil, 0o644))
		items, err := Get()
		assert.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("invalid", func(t *testing.T) {
		require.NoError(t, os.WriteFile(p, []byte("invalid: ["), 0o644))
		items, err := Get()
		assert.Nil(t, items)
		assert.Error(t, err)
	})

	t.Run("items", func(t *testing.T) {
		data := "- path: /srv\n  description: Services\n- path: /tmp\n  shortcut: 116\n"
		require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
		items, err := Get()
		require.NoError(t, err)
		assert.Equal(t, []Item{
			{Path: "/srv", Description: "Services"},
			{Path: "/tmp", Shortcut: 't'},
		}, items)
	})
}

func TestGet_UnknownHome(t *testing.T) {
	withFilePath(t, "")
	_, err := Get()
	assert.ErrorIs(t, err, errUserHomeDirIsUnknown)
	assert.ErrorIs(t, Add(Item{Path: "/"}), errUserHomeDirIsUnknown)
	assert.ErrorIs(t, Delete("/"), errUserHomeDirIsUnknown)
}

func TestAddDelete(t *testing.T) {
	p := filepath.Join(t.TempDir(), "hotlist.yaml")
	withFilePath(t, p)
	require.NoError(t, os.WriteFile(p, nil, 0o644))

	require.NoError(t, Add(Item{Path: "/srv/data", Description: "data"}))
	require.NoError(t, Add(Item{Path: "/srv/data/"}))
	items, err := Get()
	require.NoError(t, err)
	assert.Equal(t, []Item{{Path: "/srv/data", Description: "data"}}, items)

	if home, err := os.UserHomeDir(); err == nil {
		require.NoError(t, Add(Item{Path: filepath.Join(home, "projects")}))
		items, err = Get()
		require.NoError(t, err)
		assert.Equal(t, "~/projects", items[len(items)-1].Path)
	}

	require.NoError(t, Delete("/srv/data"))
	items, err = Get()
	require.NoError(t, err)
	for _, item := range items {
		assert.NotEqual(t, "/srv/data", item.Path)
	}
}

func TestAdd_MarshalError(t *testing.T) {
	p := filepath.Join(t.TempDir(), "hotlist.yaml")
	withFilePath(t, p)
	require.NoError(t, os.WriteFile(p, nil, 0o644))
	yamlMarshal = func(interface{}) ([]byte, error) {
		return nil, errors.New("marshal failed")
	}
	assert.Error(t, Add(Item{Path: "/x"}))
}

func TestFindByShortcut(t *testing.T) {
	t.Parallel()
	items := []Item{{Path: "/a"}, {Path: "/b", Shortcut: 'b'}}
	item, ok := FindByShortcut(items, 'b')
	assert.True(t, ok)
	assert.Equal(t, "/b", item.Path)
	_, ok = FindByShortcut(items, 0)
	assert.False(t, ok)
}
