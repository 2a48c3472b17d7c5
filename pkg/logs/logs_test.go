package logs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	logging "github.com/ipfs/go-log/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	origSetup := setupLogging
	origMkdirAll := mkdirAll
	defer func() {
		setupLogging = origSetup
		mkdirAll = origMkdirAll
	}()

	var got logging.Config
	setupLogging = func(cfg logging.Config) {
		got = cfg
	}

	t.Run("file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "sub", "dc.log")
		require.NoError(t, Setup(Config{Level: "debug", File: file}))
		assert.Equal(t, file, got.File)
		assert.False(t, got.Stderr)
		assert.Equal(t, logging.LevelDebug, got.Level)
		_, err := os.Stat(filepath.Dir(file))
		assert.NoError(t, err)
	})

	t.Run("default_level_stderr", func(t *testing.T) {
		require.NoError(t, Setup(Config{}))
		assert.True(t, got.Stderr)
		assert.Equal(t, logging.LevelWarn, got.Level)
	})

	t.Run("bad_level", func(t *testing.T) {
		assert.Error(t, Setup(Config{Level: "loud"}))
	})

	t.Run("mkdir_error", func(t *testing.T) {
		mkdirAll = func(string, os.FileMode) error {
			return errors.New("mkdir failed")
		}
		defer func() { mkdirAll = origMkdirAll }()
		assert.Error(t, Setup(Config{File: "/x/y.log"}))
	})
}

func TestLogger(t *testing.T) {
	assert.NotNil(t, Logger("test"))
}
