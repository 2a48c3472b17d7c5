package fsutils

import (
	"os"
	"path/filepath"
	"strings"
)

var userHomeDir = os.UserHomeDir

// ExpandHome replaces a leading "~" with the user's home directory.
// Paths like "~bob/x" are returned unchanged.
func ExpandHome(p string) string {
	rest, ok := strings.CutPrefix(p, "~")
	if !ok || (rest != "" && rest[0] != '/') {
		return p
	}
	home, err := userHomeDir()
	if err != nil || home == "" {
		return p
	}
	return filepath.Join(home, rest)
}

// CollapseHome shortens paths under the home directory to "~/...", for display.
func CollapseHome(p string) string {
	home, err := userHomeDir()
	if err != nil || home == "" {
		return p
	}
	rel, err := filepath.Rel(filepath.Clean(home), filepath.Clean(p))
	switch {
	case err != nil, rel == "..", strings.HasPrefix(rel, "../"):
		return p
	case rel == ".":
		return "~"
	}
	return "~/" + filepath.ToSlash(rel)
}
