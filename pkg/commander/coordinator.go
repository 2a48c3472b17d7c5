// Package commander owns the two panels and routes commands to them.
package commander

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dumbcommander/dumbcommander/pkg/files"
	"github.com/dumbcommander/dumbcommander/pkg/fsutils"
	"github.com/dumbcommander/dumbcommander/pkg/logs"
	"github.com/dumbcommander/dumbcommander/pkg/panel"
)

var log = logs.Logger("commander")

var (
	ErrNoSelection = errors.New("no file selected")
	errNoDirectory = errors.New("no such directory")
	errEmptyPath   = errors.New("empty path")
)

// Coordinator holds the left and right panels and which one is active.
// Cursor and activate commands go to the active panel only.
type Coordinator struct {
	store  files.Store
	panels [2]*panel.Panel

	mu     sync.RWMutex
	active Side

	onView          func(path string)
	onEdit          func(path string)
	onActiveChanged func(side Side)
}

type Option func(c *Coordinator)

// OnView receives the selected file for the View command.
func OnView(f func(path string)) Option {
	return func(c *Coordinator) {
		c.onView = f
	}
}

// OnEdit receives the selected file for the Edit command.
func OnEdit(f func(path string)) Option {
	return func(c *Coordinator) {
		c.onEdit = f
	}
}

func OnActiveChanged(f func(side Side)) Option {
	return func(c *Coordinator) {
		c.onActiveChanged = f
	}
}

func WithActive(side Side) Option {
	return func(c *Coordinator) {
		c.active = side
	}
}

// New wires two panels that share one SelectedFile handle.
func New(store files.Store, left, right *panel.Panel, o ...Option) *Coordinator {
	if left.SelectedFile() != right.SelectedFile() {
		panic("left and right panels must share the selected file handle")
	}
	c := &Coordinator{
		store:  store,
		panels: [2]*panel.Panel{left, right},
	}
	for _, option := range o {
		option(c)
	}
	return c
}

func (c *Coordinator) Panel(side Side) *panel.Panel {
	return c.panels[side]
}

func (c *Coordinator) Active() Side {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

func (c *Coordinator) ActivePanel() *panel.Panel {
	return c.panels[c.Active()]
}

// SelectedFile is the handle both panels publish their selection to.
func (c *Coordinator) SelectedFile() *panel.SelectedFile {
	return c.panels[Left].SelectedFile()
}

// SetActive makes side the receiver of cursor and activate commands.
func (c *Coordinator) SetActive(side Side) {
	c.mu.Lock()
	changed := c.active != side
	c.active = side
	c.mu.Unlock()
	if changed && c.onActiveChanged != nil {
		c.onActiveChanged(side)
	}
}

func (c *Coordinator) DispatchCursorMove(direction panel.Direction) {
	c.ActivePanel().MoveCursor(direction)
}

// DispatchActivate activates the active panel's cursor; without a cursor it does nothing.
func (c *Coordinator) DispatchActivate(ctx context.Context) error {
	p := c.ActivePanel()
	if !p.Cursor().IsSet() {
		return nil
	}
	return p.ActivateCursor(ctx)
}

// GotoDirectory opens dirPath in the panel on side, whether or not it is active.
// "~" is expanded and relative paths are resolved against that panel's directory.
// It fails with *NavigationError and leaves the panel untouched when dirPath
// does not exist or is not a directory.
func (c *Coordinator) GotoDirectory(ctx context.Context, side Side, dirPath string) error {
	p := c.panels[side]
	target, err := resolvePath(p.Dir(), dirPath)
	if err != nil {
		return &NavigationError{Side: side, Path: dirPath, Err: err}
	}
	ok, err := files.DirExists(ctx, c.store, target)
	if err != nil {
		return &NavigationError{Side: side, Path: target, Err: err}
	}
	if !ok {
		return &NavigationError{Side: side, Path: target, Err: errNoDirectory}
	}
	if err = p.Open(ctx, target); err != nil {
		return &NavigationError{Side: side, Path: target, Err: err}
	}
	log.Debugw("went to directory", "side", side, "dir", target)
	return nil
}

func resolvePath(base, dirPath string) (string, error) {
	dirPath = strings.TrimSpace(dirPath)
	if dirPath == "" {
		return "", errEmptyPath
	}
	dirPath = fsutils.ExpandHome(dirPath)
	if !filepath.IsAbs(dirPath) && base != "" {
		dirPath = filepath.Join(base, dirPath)
	}
	return filepath.Clean(dirPath), nil
}

// Dispatch executes a symbolic command.
func (c *Coordinator) Dispatch(ctx context.Context, cmd Command) error {
	log.Debugw("dispatch", "command", cmd, "active", c.Active())
	switch cmd {
	case MoveUp:
		c.DispatchCursorMove(panel.Up)
	case MoveDown:
		c.DispatchCursorMove(panel.Down)
	case Activate:
		return c.DispatchActivate(ctx)
	case GoUp:
		return c.ActivePanel().GoUp(ctx)
	case Reload:
		return c.ActivePanel().Reload(ctx)
	case SetActiveLeft:
		c.SetActive(Left)
	case SetActiveRight:
		c.SetActive(Right)
	case ToggleActive:
		c.SetActive(c.Active().Other())
	case View:
		return c.withSelectedFile(c.onView)
	case Edit:
		return c.withSelectedFile(c.onEdit)
	default:
		return fmt.Errorf("unknown command: %d", cmd)
	}
	return nil
}

func (c *Coordinator) withSelectedFile(f func(path string)) error {
	path, ok := c.SelectedFile().Path()
	if !ok {
		return ErrNoSelection
	}
	if f != nil {
		f(path)
	}
	return nil
}
