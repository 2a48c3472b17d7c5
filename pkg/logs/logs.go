// Package logs configures the named subsystem loggers used across the module.
// The terminal belongs to the UI, so logs are written to a file.
package logs

import (
	"fmt"
	"os"
	"path/filepath"

	logging "github.com/ipfs/go-log/v2"
)

const DefaultLevel = "warn"

type Config struct {
	Level string
	File  string
}

// Logger returns the logger of a subsystem, e.g. "panel".
func Logger(system string) *logging.ZapEventLogger {
	return logging.Logger(system)
}

var setupLogging = logging.SetupLogging
var mkdirAll = os.MkdirAll

// Setup points every subsystem logger at cfg.File with cfg.Level.
// An empty file keeps logging on stderr, which only suits non-interactive commands.
func Setup(cfg Config) error {
	levelName := cfg.Level
	if levelName == "" {
		levelName = DefaultLevel
	}
	level, err := logging.LevelFromString(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}
	if cfg.File != "" {
		if err = mkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	setupLogging(logging.Config{
		Format: logging.PlaintextOutput,
		Level:  level,
		File:   cfg.File,
		Stderr: cfg.File == "",
	})
	return nil
}
