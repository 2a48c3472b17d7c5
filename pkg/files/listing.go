package files

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Listing is the snapshot of a directory's immediate children.
// It is never mutated after Load; navigation replaces it as a whole.
type Listing struct {
	dir     string
	entries []Entry
}

func NewListing(dir string, entries []Entry) *Listing {
	l := &Listing{
		dir:     dir,
		entries: make([]Entry, len(entries)),
	}
	copy(l.entries, entries)
	return l
}

func (l *Listing) Dir() string {
	if l == nil {
		return ""
	}
	return l.dir
}

func (l *Listing) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// At returns the i-th entry, false when i is out of range.
func (l *Listing) At(i int) (Entry, bool) {
	if l == nil || i < 0 || i >= len(l.entries) {
		return Entry{}, false
	}
	return l.entries[i], true
}

// Entries returns a copy of the entries in listing order.
func (l *Listing) Entries() []Entry {
	if l == nil {
		return nil
	}
	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// Order is an explicit ordering applied by Load.
// OrderNone keeps the order the store enumerated the children in.
type Order int

const (
	OrderNone Order = iota
	OrderName
	OrderDirsFirst
)

func (o Order) String() string {
	switch o {
	case OrderName:
		return "name"
	case OrderDirsFirst:
		return "dirs-first"
	default:
		return "none"
	}
}

func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "none":
		return OrderNone, nil
	case "name":
		return OrderName, nil
	case "dirs-first":
		return OrderDirsFirst, nil
	}
	return OrderNone, fmt.Errorf("unknown listing order %q", s)
}

type loadOptions struct {
	order Order
}

type LoadOption func(o *loadOptions)

func WithOrder(order Order) LoadOption {
	return func(o *loadOptions) {
		o.order = order
	}
}

var errStoreNotSet = errors.New("store not set")

// Load lists the immediate children of dirPath.
// It fails with *ListingError when dirPath is missing, is not a directory or can not be read.
func Load(ctx context.Context, store Store, dirPath string, options ...LoadOption) (*Listing, error) {
	if store == nil {
		return nil, &ListingError{Path: dirPath, Kind: Unreadable, Err: errStoreNotSet}
	}
	var o loadOptions
	for _, option := range options {
		option(&o)
	}
	info, err := store.Stat(ctx, dirPath)
	if err != nil {
		return nil, newListingError(dirPath, err)
	}
	if !info.IsDir() {
		return nil, &ListingError{Path: dirPath, Kind: NotADirectory}
	}
	children, err := store.ReadDir(ctx, dirPath)
	if err != nil {
		return nil, newListingError(dirPath, err)
	}
	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		entries = append(entries, entryFromDirEntry(ctx, store, dirPath, child))
	}
	sortEntries(entries, o.order)
	return NewListing(dirPath, entries), nil
}

// entryFromDirEntry resolves symlinks through the store so that a link to a
// directory is listed as a directory. Children whose metadata can not be read
// are still listed, without size and permissions.
func entryFromDirEntry(ctx context.Context, store Store, dirPath string, child os.DirEntry) Entry {
	name := child.Name()
	isDir := child.IsDir()
	info, err := child.Info()
	if err != nil {
		info = nil
	}
	if child.Type()&fs.ModeSymlink != 0 {
		if target, statErr := store.Stat(ctx, filepath.Join(dirPath, name)); statErr == nil && target != nil {
			isDir = target.IsDir()
			info = target
		}
	}
	var o []EntryOption
	if info != nil {
		o = append(o,
			WithPermissions(PermissionsFromMode(info.Mode())),
			WithModTime(info.ModTime()),
			WithSize(info.Size()),
		)
	}
	return NewEntry(dirPath, name, isDir, o...)
}

func sortEntries(entries []Entry, order Order) {
	switch order {
	case OrderName:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].name < entries[j].name
		})
	case OrderDirsFirst:
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].isDir != entries[j].isDir {
				return entries[i].isDir
			}
			return entries[i].name < entries[j].name
		})
	}
}
