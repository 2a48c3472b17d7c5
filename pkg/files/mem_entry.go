package files

import (
	"os"
	"strings"
	"time"
)

// MemEntry describes a directory child that lives only in memory. It serves
// both as os.DirEntry and os.FileInfo, so stores without a local disk and
// tests can hand it out from ReadDir and Stat alike.
type MemEntry struct {
	name     string
	mode     os.FileMode
	size     int64
	modTime  time.Time
	detailed bool
}

var (
	_ os.DirEntry = MemEntry{}
	_ os.FileInfo = MemEntry{}
)

type MemOption func(*MemEntry)

// MemSize records the entry size and makes Info report metadata.
func MemSize(n int64) MemOption {
	return func(e *MemEntry) {
		e.size = n
		e.detailed = true
	}
}

// MemPerm records permission bits. Type bits in p are ignored.
func MemPerm(p os.FileMode) MemOption {
	return func(e *MemEntry) {
		e.mode = e.mode.Type() | p.Perm()
		e.detailed = true
	}
}

func MemModTime(t time.Time) MemOption {
	return func(e *MemEntry) {
		e.modTime = t
		e.detailed = true
	}
}

func MemFile(name string, o ...MemOption) MemEntry {
	return newMemEntry(name, 0, o)
}

func MemDir(name string, o ...MemOption) MemEntry {
	return newMemEntry(name, os.ModeDir, o)
}

func newMemEntry(name string, mode os.FileMode, o []MemOption) MemEntry {
	if strings.ContainsRune(name, '/') {
		panic("mem entry name must be a base name: " + name)
	}
	e := MemEntry{name: name, mode: mode}
	for _, opt := range o {
		opt(&e)
	}
	return e
}

// Link turns the entry into a symbolic link. The link target is whatever
// the store reports from Stat.
func (e MemEntry) Link() MemEntry {
	e.mode = os.ModeSymlink | e.mode.Perm()
	return e
}

func (e MemEntry) Name() string       { return e.name }
func (e MemEntry) IsDir() bool        { return e.mode.IsDir() }
func (e MemEntry) Type() os.FileMode  { return e.mode.Type() }
func (e MemEntry) Mode() os.FileMode  { return e.mode }
func (e MemEntry) Size() int64        { return e.size }
func (e MemEntry) ModTime() time.Time { return e.modTime }
func (e MemEntry) Sys() any           { return nil }

// Info returns nil until some metadata option was given, mimicking a
// directory read that did not fetch details.
func (e MemEntry) Info() (os.FileInfo, error) {
	if !e.detailed {
		return nil, nil
	}
	return e, nil
}
