// Package dcstate remembers panel directories between runs.
package dcstate

import (
	"path/filepath"
	"sync"

	"github.com/dumbcommander/dumbcommander/pkg/dcsettings"
	"github.com/dumbcommander/dumbcommander/pkg/fsutils"
	"github.com/dumbcommander/dumbcommander/pkg/logs"
)

var log = logs.Logger("dcstate")

var settingsDirPath = fsutils.ExpandHome(dcsettings.UserDir)

var (
	readJSON  = fsutils.LoadJSON
	writeJSON = fsutils.SaveJSON
)

// State is what a new session restores: both panel directories and the
// panel that had focus ("left" or "right").
type State struct {
	LeftDir  string `json:"left_dir,omitempty"`
	RightDir string `json:"right_dir,omitempty"`
	Active   string `json:"active,omitempty"`
}

func stateFile() string {
	return filepath.Join(settingsDirPath, dcsettings.StateFileName)
}

// GetState returns the saved state; a missing file yields an empty state.
func GetState() (*State, error) {
	var state State
	return &state, readJSON(stateFile(), &state)
}

// SaveDirs records both panel directories.
func SaveDirs(leftDir, rightDir string) {
	update(func(s *State) {
		s.LeftDir, s.RightDir = leftDir, rightDir
	})
}

// SaveActive records which panel had focus.
func SaveActive(side string) {
	update(func(s *State) {
		s.Active = side
	})
}

// Save overwrites the whole state.
func Save(state State) {
	update(func(s *State) {
		*s = state
	})
}

var updateMu sync.Mutex

// update applies change on top of what is on disk. Failures are logged:
// losing the saved state must never interrupt the session.
func update(change func(*State)) {
	updateMu.Lock()
	defer updateMu.Unlock()
	path := stateFile()
	var state State
	if err := readJSON(path, &state); err != nil {
		log.Warnf("ignoring unreadable state file %s: %v", path, err)
		state = State{}
	}
	change(&state)
	if err := writeJSON(path, state); err != nil {
		log.Warnf("failed to save state to %s: %v", path, err)
	}
}
