// Package hotlist keeps the user's list of frequently visited directories.
package hotlist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dumbcommander/dumbcommander/pkg/dcsettings"
	"github.com/dumbcommander/dumbcommander/pkg/fsutils"
	"gopkg.in/yaml.v3"
)

type Item struct {
	Path        string `yaml:"path"`
	Shortcut    rune   `yaml:"shortcut,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Key identifies an item by its expanded, cleaned path.
func (i Item) Key() string {
	return filepath.Clean(fsutils.ExpandHome(i.Path))
}

var filePath string

var getUserDir = dcsettings.GetUserDir
var yamlMarshal = yaml.Marshal
var yamlUnmarshal = yaml.Unmarshal

func init() {
	userDir, err := getUserDir()
	if err == nil {
		filePath = filepath.Join(userDir, dcsettings.HotlistFileName)
	}
}

var errUserHomeDirIsUnknown = errors.New("user home directory is unknown")

// Get returns the saved items. When no file exists yet it is created with defaults.
func Get() (items []Item, err error) {
	if filePath == "" {
		return nil, errUserHomeDirIsUnknown
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			defaults := defaultItems()
			if err = write(defaults); err != nil {
				return nil, err
			}
			return defaults, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return []Item{}, nil
	}
	if err = yamlUnmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}
	return items, nil
}

// Add appends item unless an item with the same path is already present.
// Paths under the home directory are stored with a "~" prefix.
func Add(item Item) error {
	if filePath == "" {
		return errUserHomeDirIsUnknown
	}
	item.Path = fsutils.CollapseHome(item.Path)
	items, err := Get()
	if err != nil {
		return err
	}
	key := item.Key()
	for _, existing := range items {
		if existing.Key() == key {
			return nil
		}
	}
	return write(append(items, item))
}

// Delete removes every item pointing at dirPath.
func Delete(dirPath string) error {
	if filePath == "" {
		return errUserHomeDirIsUnknown
	}
	items, err := Get()
	if err != nil {
		return err
	}
	key := Item{Path: dirPath}.Key()
	updated := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Key() != key {
			updated = append(updated, item)
		}
	}
	return write(updated)
}

// FindByShortcut returns the first item bound to r.
func FindByShortcut(items []Item, r rune) (Item, bool) {
	for _, item := range items {
		if item.Shortcut != 0 && item.Shortcut == r {
			return item, true
		}
	}
	return Item{}, false
}

func write(items []Item) error {
	data, err := yamlMarshal(items)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0o644)
}

func defaultItems() []Item {
	return []Item{
		{Path: "~", Shortcut: 'h', Description: "Home"},
		{Path: "/", Shortcut: 'r', Description: "Root"},
		{Path: dcsettings.UserDir, Description: "Settings"},
	}
}
