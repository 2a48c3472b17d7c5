package panel

import "github.com/dumbcommander/dumbcommander/pkg/files"

type Change int

const (
	// ChangeDir means the directory and listing were replaced and the cursor reset.
	ChangeDir Change = iota
	// ChangeCursor means only the cursor moved.
	ChangeCursor
)

func (c Change) String() string {
	if c == ChangeDir {
		return "dir"
	}
	return "cursor"
}

// Observer is told about every state change after the panel lock is released,
// so it may read the panel back.
type Observer interface {
	PanelChanged(p *Panel, change Change)
}

type ObserverFunc func(p *Panel, change Change)

func (f ObserverFunc) PanelChanged(p *Panel, change Change) {
	f(p, change)
}

type options struct {
	name       string
	parentRow  bool
	order      files.Order
	observers  []Observer
	onOpenFile func(path string)
}

type Option func(o *options)

// WithName labels the panel in logs and titles.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithParentRow shows a ".." row above the entries when the panel is not at the root.
func WithParentRow(show bool) Option {
	return func(o *options) {
		o.parentRow = show
	}
}

func WithOrder(order files.Order) Option {
	return func(o *options) {
		o.order = order
	}
}

func WithObserver(observer Observer) Option {
	return func(o *options) {
		o.observers = append(o.observers, observer)
	}
}

// OnOpenFile receives the path of a file that was activated.
// The panel does not change state for it.
func OnOpenFile(f func(path string)) Option {
	return func(o *options) {
		o.onOpenFile = f
	}
}
