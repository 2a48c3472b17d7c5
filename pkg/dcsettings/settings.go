package dcsettings

import (
	"os"
	"path/filepath"
)

// UserDir is where config, state, hotlist and logs live.
const UserDir = "~/.dumbcommander"

const (
	ConfigFileName  = "config.yaml"
	StateFileName   = "state.json"
	HotlistFileName = "hotlist.yaml"
	LogFileName     = "dumbcommander.log"
)

var osUserHomeDir = os.UserHomeDir

// GetUserDir returns the expanded user directory.
// On failure it returns the unexpanded UserDir together with the error.
func GetUserDir() (string, error) {
	userHomeDir, err := osUserHomeDir()
	if err != nil {
		return UserDir, err
	}
	return filepath.Join(userHomeDir, UserDir[2:]), nil
}

// UserFile returns the path of name inside the user directory.
func UserFile(name string) (string, error) {
	dir, err := GetUserDir()
	return filepath.Join(dir, name), err
}
