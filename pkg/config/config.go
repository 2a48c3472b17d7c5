// Package config loads user preferences from ~/.dumbcommander/config.yaml.
// Environment variables prefixed with DUMBCOMMANDER_ override file values,
// e.g. DUMBCOMMANDER_LOG_LEVEL=debug.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dumbcommander/dumbcommander/pkg/dcsettings"
	"github.com/dumbcommander/dumbcommander/pkg/files"
	"github.com/dumbcommander/dumbcommander/pkg/logs"
	"github.com/spf13/viper"
)

const EnvPrefix = "DUMBCOMMANDER"

type Config struct {
	Panels PanelsConfig      `mapstructure:"panels"`
	Editor string            `mapstructure:"editor"`
	Viewer ViewerConfig      `mapstructure:"viewer"`
	Log    logs.Config       `mapstructure:"log"`
	Colors map[string]string `mapstructure:"colors"`
}

// PanelsConfig holds start directories and listing presentation.
// Empty directories fall back to the saved state and then to the home directory.
type PanelsConfig struct {
	Left      string `mapstructure:"left"`
	Right     string `mapstructure:"right"`
	ParentRow bool   `mapstructure:"parent_row"`
	Order     string `mapstructure:"order"`
}

type ViewerConfig struct {
	Style    string `mapstructure:"style"`
	MaxBytes int    `mapstructure:"max_bytes"`
}

// ListingOrder parses Panels.Order.
func (c Config) ListingOrder() (files.Order, error) {
	return files.ParseOrder(c.Panels.Order)
}

var getUserDir = dcsettings.GetUserDir

func defaultEditor() string {
	for _, name := range []string{"VISUAL", "EDITOR"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return "vi"
}

func newViper() *viper.Viper {
	v := viper.New()
	userDir, _ := getUserDir()

	v.SetDefault("panels.left", "")
	v.SetDefault("panels.right", "")
	v.SetDefault("panels.parent_row", false)
	v.SetDefault("panels.order", files.OrderNone.String())
	v.SetDefault("editor", defaultEditor())
	v.SetDefault("viewer.style", "monokai")
	v.SetDefault("viewer.max_bytes", 256*1024)
	v.SetDefault("log.level", logs.DefaultLevel)
	v.SetDefault("log.file", filepath.Join(userDir, dcsettings.LogFileName))

	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Load reads configuration from cfgPath, or from the user directory when
// cfgPath is empty. A missing default config file is not an error.
// DUMBCOMMANDER_CONFIG names the file when cfgPath is empty.
func Load(cfgPath string) (Config, error) {
	v := newViper()

	if cfgPath == "" {
		cfgPath = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		userDir, _ := getUserDir()
		v.AddConfigPath(userDir)
		v.SetConfigName(strings.TrimSuffix(dcsettings.ConfigFileName, filepath.Ext(dcsettings.ConfigFileName)))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := c.ListingOrder(); err != nil {
		return Config{}, fmt.Errorf("panels.order: %w", err)
	}
	if c.Viewer.MaxBytes < 0 {
		return Config{}, fmt.Errorf("viewer.max_bytes must not be negative: %d", c.Viewer.MaxBytes)
	}
	return c, nil
}

// Save writes cfg as YAML, creating the directory if needed.
func Save(cfgPath string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("panels.left", cfg.Panels.Left)
	v.Set("panels.right", cfg.Panels.Right)
	v.Set("panels.parent_row", cfg.Panels.ParentRow)
	v.Set("panels.order", cfg.Panels.Order)
	v.Set("editor", cfg.Editor)
	v.Set("viewer.style", cfg.Viewer.Style)
	v.Set("viewer.max_bytes", cfg.Viewer.MaxBytes)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	if len(cfg.Colors) > 0 {
		v.Set("colors", cfg.Colors)
	}

	if err := v.WriteConfigAs(cfgPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
