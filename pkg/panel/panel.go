// Package panel implements the navigation state of one directory pane.
package panel

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/dumbcommander/dumbcommander/pkg/files"
	"github.com/dumbcommander/dumbcommander/pkg/logs"
)

var log = logs.Logger("panel")

type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Panel owns the current directory, its listing and a cursor.
// Operations on one panel are serialized; two panels never share a lock.
type Panel struct {
	mu       sync.Mutex
	o        options
	store    files.Store
	selected *SelectedFile

	dir     string
	listing *files.Listing
	cursor  Cursor
}

// New creates a panel with no directory. Call Open to load the first one.
func New(store files.Store, selected *SelectedFile, o ...Option) *Panel {
	if selected == nil {
		selected = NewSelectedFile()
	}
	p := &Panel{
		store:    store,
		selected: selected,
	}
	for _, option := range o {
		option(&p.o)
	}
	return p
}

func (p *Panel) Name() string {
	return p.o.name
}

func (p *Panel) Dir() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dir
}

func (p *Panel) Listing() *files.Listing {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.listing
}

func (p *Panel) Cursor() Cursor {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

// SelectedFile returns the handle shared with the other panel.
func (p *Panel) SelectedFile() *SelectedFile {
	return p.selected
}

// Selected returns the entry under the cursor.
func (p *Panel) Selected() (files.Entry, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	i, ok := p.cursor.Index()
	if !ok {
		return files.Entry{}, false
	}
	return p.listing.At(i)
}

// ShowsParentRow reports whether the ".." row is currently displayed.
func (p *Panel) ShowsParentRow() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.showsParentRow()
}

func (p *Panel) showsParentRow() bool {
	return p.o.parentRow && p.dir != "" && !files.IsRoot(p.dir)
}

// Open loads dirPath and replaces the listing, resetting the cursor.
// On failure the directory, listing and cursor stay as they were.
func (p *Panel) Open(ctx context.Context, dirPath string) error {
	p.mu.Lock()
	err := p.open(ctx, dirPath)
	p.mu.Unlock()
	if err != nil {
		return err
	}
	p.notify(ChangeDir)
	return nil
}

// Reload is Open on the current directory. It is a no-op before the first Open.
func (p *Panel) Reload(ctx context.Context) error {
	dir := p.Dir()
	if dir == "" {
		return nil
	}
	return p.Open(ctx, dir)
}

func (p *Panel) open(ctx context.Context, dirPath string) error {
	abs, err := filepath.Abs(dirPath)
	if err != nil {
		log.Warnw("failed to resolve directory", "panel", p.o.name, "dir", dirPath, "err", err)
		return err
	}
	dirPath = abs
	listing, err := files.Load(ctx, p.store, dirPath, files.WithOrder(p.o.order))
	if err != nil {
		log.Warnw("failed to open directory", "panel", p.o.name, "dir", dirPath, "err", err)
		return err
	}
	p.dir = dirPath
	p.listing = listing
	p.cursor = NoSelection
	log.Debugw("opened directory", "panel", p.o.name, "dir", dirPath, "entries", listing.Len())
	return nil
}

// GoUp opens the parent directory. It is a no-op at the filesystem root.
func (p *Panel) GoUp(ctx context.Context) error {
	p.mu.Lock()
	changed, err := p.goUp(ctx)
	p.mu.Unlock()
	if changed {
		p.notify(ChangeDir)
	}
	return err
}

func (p *Panel) goUp(ctx context.Context) (bool, error) {
	if p.dir == "" {
		return false, nil
	}
	parent := files.Parent(p.dir)
	if parent == p.dir {
		return false, nil
	}
	if err := p.open(ctx, parent); err != nil {
		return false, err
	}
	return true, nil
}

// SelectIndex moves the cursor to entry i and publishes its path to the
// shared SelectedFile. It returns false and changes nothing when i is out of range.
func (p *Panel) SelectIndex(i int) bool {
	p.mu.Lock()
	ok := p.selectIndex(i)
	p.mu.Unlock()
	if ok {
		p.notify(ChangeCursor)
	}
	return ok
}

func (p *Panel) selectIndex(i int) bool {
	entry, ok := p.listing.At(i)
	if !ok {
		return false
	}
	p.cursor = At(i)
	p.selected.Set(entry.Path())
	return true
}

// SelectParentRow puts the cursor on the ".." row when it is shown.
func (p *Panel) SelectParentRow() bool {
	p.mu.Lock()
	ok := p.showsParentRow()
	if ok {
		p.cursor = ParentRow
	}
	p.mu.Unlock()
	if ok {
		p.notify(ChangeCursor)
	}
	return ok
}

// Activate selects entry i, then descends into it when it is a directory.
// For a file the OnOpenFile callback is invoked and the panel state is left alone.
func (p *Panel) Activate(ctx context.Context, i int) error {
	p.mu.Lock()
	result, err := p.activate(ctx, i)
	p.mu.Unlock()
	p.afterActivate(result)
	return err
}

type activation struct {
	selected bool
	opened   bool
	openFile string
}

func (p *Panel) activate(ctx context.Context, i int) (result activation, err error) {
	if !p.selectIndex(i) {
		return
	}
	result.selected = true
	entry, _ := p.listing.At(i)
	if !entry.IsDir() {
		result.openFile = entry.Path()
		return
	}
	if err = p.open(ctx, entry.Path()); err != nil {
		return
	}
	result.opened = true
	return
}

func (p *Panel) afterActivate(result activation) {
	switch {
	case result.opened:
		p.notify(ChangeDir)
	case result.selected:
		p.notify(ChangeCursor)
	}
	if result.openFile != "" && p.o.onOpenFile != nil {
		p.o.onOpenFile(result.openFile)
	}
}

// ActivateCursor activates whatever the cursor points at; the ".." row goes up.
// It is a no-op without a cursor.
func (p *Panel) ActivateCursor(ctx context.Context) error {
	p.mu.Lock()
	cursor := p.cursor
	if cursor.IsParent() {
		changed, err := p.goUp(ctx)
		p.mu.Unlock()
		if changed {
			p.notify(ChangeDir)
		}
		return err
	}
	i, ok := cursor.Index()
	if !ok {
		p.mu.Unlock()
		return nil
	}
	result, err := p.activate(ctx, i)
	p.mu.Unlock()
	p.afterActivate(result)
	return err
}

// MoveCursor moves the cursor one row, holding at either end.
// Without a cursor, Down selects the first entry and Up the last one.
// The ".." row, when shown, sits above the first entry.
func (p *Panel) MoveCursor(direction Direction) {
	p.mu.Lock()
	moved := p.moveCursor(direction)
	p.mu.Unlock()
	if moved {
		p.notify(ChangeCursor)
	}
}

func (p *Panel) moveCursor(direction Direction) bool {
	n := p.listing.Len()
	if n == 0 {
		return false
	}
	var target int
	switch {
	case !p.cursor.IsSet():
		if direction == Up {
			target = n - 1
		}
	case p.cursor.IsParent():
		if direction == Up {
			return false
		}
	default:
		i, _ := p.cursor.Index()
		if direction == Up {
			if i == 0 && p.showsParentRow() {
				p.cursor = ParentRow
				return true
			}
			target = max(0, i-1)
		} else {
			target = min(n-1, i+1)
		}
	}
	return p.selectIndex(target)
}

func (p *Panel) notify(change Change) {
	for _, observer := range p.o.observers {
		observer.PanelChanged(p, change)
	}
}
