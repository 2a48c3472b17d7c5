package files

import (
	"path/filepath"
	"strings"
	"time"
)

// Entry is one child of a listed directory. It is immutable and is
// recreated on every load, so two entries are equal when their paths are.
type Entry struct {
	name    string
	path    string
	isDir   bool
	size    int64
	hasSize bool
	perm    Permissions
	hasPerm bool
	modTime time.Time
}

type EntryOption func(*Entry)

func WithSize(size int64) EntryOption {
	return func(e *Entry) {
		e.size = size
		e.hasSize = true
	}
}

func WithPermissions(perm Permissions) EntryOption {
	return func(e *Entry) {
		e.perm = perm
		e.hasPerm = true
	}
}

func WithModTime(t time.Time) EntryOption {
	return func(e *Entry) {
		e.modTime = t
	}
}

// NewEntry creates an entry for name inside dirPath.
// Directories never carry a size.
func NewEntry(dirPath, name string, isDir bool, o ...EntryOption) Entry {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("entry name can not have path: " + name)
	}
	e := Entry{
		name:  name,
		path:  filepath.Join(dirPath, name),
		isDir: isDir,
	}
	for _, opt := range o {
		opt(&e)
	}
	if e.isDir {
		e.size, e.hasSize = 0, false
	}
	return e
}

func (e Entry) Name() string { return e.name }

// Path returns the full path of the entry.
func (e Entry) Path() string { return e.path }

func (e Entry) IsDir() bool { return e.isDir }

func (e Entry) ModTime() time.Time { return e.modTime }

// Size returns the size in bytes, false for directories and unreadable entries.
func (e Entry) Size() (int64, bool) {
	return e.size, e.hasSize
}

// Perm returns the permission bits, false when metadata was unavailable.
func (e Entry) Perm() (Permissions, bool) {
	return e.perm, e.hasPerm
}

// TypeLabel is "Folder" for directories and the extension without the dot for files.
func (e Entry) TypeLabel() string {
	if e.isDir {
		return "Folder"
	}
	return strings.TrimPrefix(filepath.Ext(e.name), ".")
}

func (e Entry) String() string {
	return e.path
}
