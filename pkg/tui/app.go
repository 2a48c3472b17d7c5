package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// App is the part of *tview.Application the UI uses.
// Tests replace individual methods through AppMethod options.
type App interface {
	QueueUpdateDraw(f func())
	SetFocus(p tview.Primitive)
	SetRoot(root tview.Primitive, fullscreen bool)
	SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey)
	EnableMouse(bool)
	Suspend(f func()) bool
	Stop()
}

type AppMethod func(a *appProxy)

func NewApp(app *tview.Application, o ...AppMethod) App {
	a := &appProxy{}
	if app != nil {
		a.queueUpdateDraw = func(f func()) {
			app.QueueUpdateDraw(f)
		}
		a.setFocus = func(p tview.Primitive) {
			app.SetFocus(p)
		}
		a.setRoot = func(root tview.Primitive, fullscreen bool) {
			app.SetRoot(root, fullscreen)
		}
		a.setInputCapture = func(capture func(event *tcell.EventKey) *tcell.EventKey) {
			app.SetInputCapture(capture)
		}
		a.enableMouse = func(b bool) {
			app.EnableMouse(b)
		}
		a.suspend = app.Suspend
		a.stop = app.Stop
	}
	for _, m := range o {
		m(a)
	}
	return a
}

func WithQueueUpdateDraw(f func(func())) AppMethod {
	return func(a *appProxy) {
		a.queueUpdateDraw = f
	}
}

func WithSetFocus(f func(p tview.Primitive)) AppMethod {
	return func(a *appProxy) {
		a.setFocus = f
	}
}

func WithSuspend(f func(func()) bool) AppMethod {
	return func(a *appProxy) {
		a.suspend = f
	}
}

func WithStop(f func()) AppMethod {
	return func(a *appProxy) {
		a.stop = f
	}
}

var _ App = (*appProxy)(nil)

type appProxy struct {
	queueUpdateDraw func(func())
	setFocus        func(p tview.Primitive)
	setRoot         func(root tview.Primitive, fullscreen bool)
	setInputCapture func(capture func(event *tcell.EventKey) *tcell.EventKey)
	enableMouse     func(bool)
	suspend         func(func()) bool
	stop            func()
}

func (a appProxy) QueueUpdateDraw(f func()) {
	if a.queueUpdateDraw != nil {
		a.queueUpdateDraw(f)
	}
}

func (a appProxy) SetFocus(p tview.Primitive) {
	if a.setFocus != nil {
		a.setFocus(p)
	}
}

func (a appProxy) SetRoot(root tview.Primitive, fullscreen bool) {
	if a.setRoot != nil {
		a.setRoot(root, fullscreen)
	}
}

func (a appProxy) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	if a.setInputCapture != nil {
		a.setInputCapture(capture)
	}
}

func (a appProxy) EnableMouse(b bool) {
	if a.enableMouse != nil {
		a.enableMouse(b)
	}
}

func (a appProxy) Suspend(f func()) bool {
	if a.suspend == nil {
		f()
		return true
	}
	return a.suspend(f)
}

func (a appProxy) Stop() {
	if a.stop != nil {
		a.stop()
	}
}
