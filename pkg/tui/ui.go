// Package tui is the terminal front end: two panel views, a status line and
// a function key bar around a commander.Coordinator.
package tui

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dumbcommander/dumbcommander/pkg/colorizer"
	"github.com/dumbcommander/dumbcommander/pkg/commander"
	"github.com/dumbcommander/dumbcommander/pkg/config"
	"github.com/dumbcommander/dumbcommander/pkg/dcstate"
	"github.com/dumbcommander/dumbcommander/pkg/files"
	"github.com/dumbcommander/dumbcommander/pkg/files/osfile"
	"github.com/dumbcommander/dumbcommander/pkg/fsutils"
	"github.com/dumbcommander/dumbcommander/pkg/gitutils"
	"github.com/dumbcommander/dumbcommander/pkg/hotlist"
	"github.com/dumbcommander/dumbcommander/pkg/logs"
	"github.com/dumbcommander/dumbcommander/pkg/opener"
	"github.com/dumbcommander/dumbcommander/pkg/panel"
	"github.com/dumbcommander/dumbcommander/pkg/viewers"
	"github.com/dumbcommander/dumbcommander/pkg/watch"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var log = logs.Logger("tui")

const (
	pageMain    = "main"
	pageViewer  = "viewer"
	pageHotlist = "hotlist"
	pageGoto    = "goto"
)

const maxCompletions = 20

type dirWatcher interface {
	Watch(key, dir string) error
	Close() error
}

type statusPool interface {
	Submit(req gitutils.StatusRequest) bool
	Close()
}

type fileOpener interface {
	Open(path string) error
	Edit(path string) error
}

var (
	getState      = dcstate.GetState
	saveState     = dcstate.Save
	saveDirs      = dcstate.SaveDirs
	saveActive    = dcstate.SaveActive
	getHotlist    = hotlist.Get
	addHotlist    = hotlist.Add
	deleteHotlist = hotlist.Delete
	userHomeDir   = os.UserHomeDir
)

var newWatcher = func(onChange watch.ChangeFunc) (dirWatcher, error) {
	return watch.New(onChange)
}

var newStatusPool = func() statusPool {
	return gitutils.NewStatusWorkerPool(2)
}

var newOpener = func(editor string) fileOpener {
	return opener.New(editor)
}

// UI wires the coordinator to tview widgets and to the helpers around it:
// the directory watcher, the git badge workers, the viewer and the opener.
type UI struct {
	app       App
	ctx       context.Context
	cfg       config.Config
	store     files.Store
	commander *commander.Coordinator
	views     [2]*panelView
	pages     *tview.Pages
	status    *statusLine
	bottom    *bottom
	prompt    *gotoPrompt
	hotlist   *hotlistView
	viewer    *viewers.TextViewer
	opener    fileOpener
	watcher   dirWatcher
	gitPool   statusPool
	ready     bool
}

// SetupApp builds the UI on the local filesystem and makes it the root of app.
func SetupApp(app *tview.Application, cfg config.Config) (*UI, error) {
	return New(NewApp(app), osfile.NewStore("/"), cfg)
}

func New(app App, store files.Store, cfg config.Config) (*UI, error) {
	order, err := cfg.ListingOrder()
	if err != nil {
		return nil, err
	}
	nameColorizer, err := colorizer.New(cfg.Colors)
	if err != nil {
		return nil, err
	}
	u := &UI{
		app:    app,
		ctx:    context.Background(),
		cfg:    cfg,
		store:  store,
		opener: newOpener(cfg.Editor),
		status: newStatusLine(),
		viewer: viewers.NewTextViewer(viewers.Options{
			Style:    cfg.Viewer.Style,
			MaxBytes: cfg.Viewer.MaxBytes,
		}),
	}
	leftDir, rightDir, home, active := u.initialDirs()

	selected := panel.NewSelectedFile()
	newPanel := func(side commander.Side) *panel.Panel {
		return panel.New(store, selected,
			panel.WithName(side.String()),
			panel.WithParentRow(cfg.Panels.ParentRow),
			panel.WithOrder(order),
			panel.WithObserver(panel.ObserverFunc(func(_ *panel.Panel, change panel.Change) {
				u.panelChanged(side, change)
			})),
			panel.OnOpenFile(u.openFile),
		)
	}
	left, right := newPanel(commander.Left), newPanel(commander.Right)
	u.commander = commander.New(store, left, right,
		commander.WithActive(active),
		commander.OnView(u.view),
		commander.OnEdit(u.edit),
		commander.OnActiveChanged(u.activeChanged),
	)
	for _, side := range []commander.Side{commander.Left, commander.Right} {
		v := newPanelView(side, u.commander.Panel(side), nameColorizer)
		v.SetMouseCapture(u.mouseCapture(v))
		u.views[side] = v
	}

	u.gitPool = newStatusPool()
	if u.watcher, err = newWatcher(u.dirChanged); err != nil {
		log.Warnf("directory watching is disabled: %v", err)
		u.watcher = nil
	}

	u.createLayout()

	leftErr := u.openInitialDir(commander.Left, leftDir, home)
	rightErr := u.openInitialDir(commander.Right, rightDir, home)
	u.activeChanged(active)
	u.ready = true
	u.saveState()
	if err = cmp.Or(leftErr, rightErr); err != nil {
		u.status.showError(err)
	}
	return u, nil
}

func (u *UI) createLayout() {
	u.bottom = newBottom(
		[]MenuItem{
			{Title: "F3 View", HotKeys: []string{"F3"}, Action: func() { u.dispatch(commander.View) }},
			{Title: "F4 Edit", HotKeys: []string{"F4"}, Action: func() { u.dispatch(commander.Edit) }},
			{Title: "^R Reload", HotKeys: []string{"^R"}, Action: func() { u.dispatch(commander.Reload) }},
			{Title: "^G Go to", HotKeys: []string{"^G"}, Action: u.showGotoPrompt},
			{Title: "^\\ Hotlist", HotKeys: []string{"^\\"}, Action: u.showHotlist},
			{Title: "^D Add to hotlist", HotKeys: []string{"^D"}, Action: u.addToHotlist},
			{Title: "F10 Quit", HotKeys: []string{"F10"}, Action: u.quit},
		},
		[]MenuItem{
			{Title: "Go to", HotKeys: []string{"o"}, Action: u.showGotoPrompt},
			{Title: "~ Home", HotKeys: []string{"~"}, Action: u.goHome},
			{Title: "/ Root", HotKeys: []string{"/"}, Action: func() { u.gotoDir("/") }},
			{Title: "Exit", HotKeys: []string{"x"}, Action: u.quit},
		},
	)
	u.prompt = newGotoPrompt(u.submitGoto, u.closeModal(pageGoto), u.completeDir)
	u.hotlist = newHotlistView(u.selectHotlistItem, u.deleteHotlistItem, u.closeModal(pageHotlist))
	u.viewer.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape, event.Key() == tcell.KeyF3,
			event.Key() == tcell.KeyRune && event.Rune() == 'q':
			u.closeViewer()
			return nil
		}
		return event
	})

	panels := tview.NewFlex().
		AddItem(u.views[commander.Left], 0, 1, true).
		AddItem(u.views[commander.Right], 0, 1, false)
	main := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(panels, 0, 1, true).
		AddItem(u.status, 1, 0, false).
		AddItem(u.bottom, 1, 0, false)

	u.pages = tview.NewPages().
		AddPage(pageMain, main, true, true).
		AddPage(pageViewer, u.viewer, true, false).
		AddPage(pageHotlist, u.hotlist, true, false).
		AddPage(pageGoto, u.prompt, true, false)

	u.app.SetRoot(u.pages, true)
	u.app.SetInputCapture(u.inputCapture)
	u.app.EnableMouse(true)
}

// initialDirs picks the configured directories, then the saved ones, then home.
func (u *UI) initialDirs() (left, right, home string, active commander.Side) {
	state, err := getState()
	if err != nil {
		log.Warnf("failed to read saved state: %v", err)
	}
	if state == nil {
		state = &dcstate.State{}
	}
	home, err = userHomeDir()
	if err != nil || home == "" {
		home = "/"
	}
	left = firstNonEmpty(u.cfg.Panels.Left, state.LeftDir, home)
	right = firstNonEmpty(u.cfg.Panels.Right, state.RightDir, home)
	if state.Active != "" {
		if active, err = commander.ParseSide(state.Active); err != nil {
			log.Warnf("ignoring saved active panel: %v", err)
		}
	}
	return left, right, home, active
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// openInitialDir falls back to home and then the root when dir cannot be opened.
// It returns the error of the first attempt that failed.
func (u *UI) openInitialDir(side commander.Side, dir, home string) (firstErr error) {
	for _, candidate := range []string{dir, home, "/"} {
		err := u.commander.GotoDirectory(u.ctx, side, candidate)
		if err == nil {
			return firstErr
		}
		log.Warnf("failed to open %s in %s panel: %v", candidate, side, err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Commander exposes the coordinator, e.g. for scripted navigation.
func (u *UI) Commander() *commander.Coordinator {
	return u.commander
}

// Close saves the panel state and stops background work.
func (u *UI) Close() {
	u.saveState()
	if u.watcher != nil {
		if err := u.watcher.Close(); err != nil {
			log.Warnf("failed to close watcher: %v", err)
		}
	}
	u.gitPool.Close()
}

func (u *UI) saveState() {
	if !u.ready {
		return
	}
	saveState(dcstate.State{
		LeftDir:  u.commander.Panel(commander.Left).Dir(),
		RightDir: u.commander.Panel(commander.Right).Dir(),
		Active:   u.commander.Active().String(),
	})
}

func (u *UI) panelChanged(side commander.Side, change panel.Change) {
	v := u.views[side]
	if v == nil {
		return
	}
	switch change {
	case panel.ChangeDir:
		v.git = nil
		v.refresh()
		u.watchDir(side)
		u.requestGitStatus(side)
		if u.ready {
			saveDirs(u.commander.Panel(commander.Left).Dir(), u.commander.Panel(commander.Right).Dir())
		}
	case panel.ChangeCursor:
		v.syncCursor()
	}
	if side == u.commander.Active() {
		u.status.showSelection(v.panel)
	}
}

func (u *UI) activeChanged(side commander.Side) {
	for _, v := range u.views {
		v.setActive(v.side == side)
	}
	u.app.SetFocus(u.views[side])
	u.status.showSelection(u.views[side].panel)
	if u.ready {
		saveActive(side.String())
	}
}

func (u *UI) watchDir(side commander.Side) {
	if u.watcher == nil {
		return
	}
	if err := u.watcher.Watch(side.String(), u.commander.Panel(side).Dir()); err != nil {
		log.Debugw("failed to watch directory", "side", side, "err", err)
	}
}

// dirChanged runs on the watcher goroutine.
func (u *UI) dirChanged(key, dir string) {
	u.app.QueueUpdateDraw(func() {
		for _, v := range u.views {
			if v.side.String() == key && v.panel.Dir() == dir {
				v.setStale(true)
			}
		}
	})
}

func (u *UI) requestGitStatus(side commander.Side) {
	v := u.views[side]
	dir := v.panel.Dir()
	u.gitPool.Submit(gitutils.StatusRequest{
		Dir: dir,
		Callback: func(status *gitutils.RepoStatus) {
			u.app.QueueUpdateDraw(func() {
				if v.panel.Dir() == dir {
					v.setGitStatus(status)
				}
			})
		},
	})
}

func (u *UI) dispatch(cmd commander.Command) {
	u.handleErr(u.commander.Dispatch(u.ctx, cmd))
}

func (u *UI) handleErr(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, commander.ErrNoSelection) {
		u.status.showMessage("No file selected")
		return
	}
	log.Debugw("command failed", "err", err)
	u.status.showError(err)
}

func (u *UI) gotoDir(dirPath string) {
	u.handleErr(u.commander.GotoDirectory(u.ctx, u.commander.Active(), dirPath))
}

func (u *UI) goHome() {
	home, err := userHomeDir()
	if err != nil {
		u.status.showError(err)
		return
	}
	u.gotoDir(home)
}

func (u *UI) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	if front, _ := u.pages.GetFrontPage(); front != pageMain {
		return event
	}
	if cmd, ok := translateKey(event); ok {
		u.dispatch(cmd)
		return nil
	}
	switch translateAppKey(event) {
	case actionGoto:
		u.showGotoPrompt()
	case actionHotlist:
		u.showHotlist()
	case actionAddToHotlist:
		u.addToHotlist()
	case actionHome:
		u.goHome()
	case actionRoot:
		u.gotoDir("/")
	case actionQuit:
		u.quit()
	case actionPageUp:
		u.moveBy(-u.views[u.commander.Active()].pageSize())
	case actionPageDown:
		u.moveBy(u.views[u.commander.Active()].pageSize())
	case actionFirst:
		u.moveTo(false)
	case actionLast:
		u.moveTo(true)
	default:
		return event
	}
	return nil
}

// moveBy moves the active cursor delta rows, clamped to the listing.
func (u *UI) moveBy(delta int) {
	p := u.commander.ActivePanel()
	n := p.Listing().Len()
	if n == 0 {
		return
	}
	i, ok := p.Cursor().Index()
	switch {
	case !ok && delta < 0:
		i = n
	case !ok:
		i = -1
	}
	p.SelectIndex(min(max(i+delta, 0), n-1))
}

func (u *UI) moveTo(last bool) {
	p := u.commander.ActivePanel()
	if n := p.Listing().Len(); n > 0 && last {
		p.SelectIndex(n - 1)
	} else {
		p.SelectIndex(0)
	}
}

func (u *UI) mouseCapture(v *panelView) func(tview.MouseAction, *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	return func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action != tview.MouseLeftClick && action != tview.MouseLeftDoubleClick {
			return action, event
		}
		x, y := event.Position()
		if !v.InRect(x, y) {
			return action, event
		}
		u.commander.SetActive(v.side)
		index, isParent, ok := v.rowAt(x, y)
		if ok {
			if isParent {
				v.panel.SelectParentRow()
			} else {
				v.panel.SelectIndex(index)
			}
			if action == tview.MouseLeftDoubleClick {
				u.handleErr(u.commander.DispatchActivate(u.ctx))
			}
		}
		return tview.MouseConsumed, nil
	}
}

func (u *UI) openFile(path string) {
	if err := u.opener.Open(path); err != nil {
		u.status.showError(err)
	}
}

func (u *UI) view(path string) {
	u.viewer.Show(path, u.app.QueueUpdateDraw)
	u.pages.ShowPage(pageViewer)
	u.pages.SendToFront(pageViewer)
	u.app.SetFocus(u.viewer)
}

func (u *UI) closeViewer() {
	u.pages.HidePage(pageViewer)
	u.focusActive()
}

func (u *UI) edit(path string) {
	var err error
	u.app.Suspend(func() {
		err = u.opener.Edit(path)
	})
	if err != nil {
		u.status.showError(err)
	}
}

func (u *UI) focusActive() {
	u.app.SetFocus(u.views[u.commander.Active()])
}

func (u *UI) closeModal(page string) func() {
	return func() {
		u.pages.HidePage(page)
		u.focusActive()
	}
}

func (u *UI) showGotoPrompt() {
	u.prompt.reset("")
	u.pages.ShowPage(pageGoto)
	u.pages.SendToFront(pageGoto)
	u.app.SetFocus(u.prompt.input)
}

func (u *UI) submitGoto(dirPath string) {
	u.closeModal(pageGoto)()
	u.gotoDir(dirPath)
}

// completeDir suggests subdirectories for the text typed into the goto prompt.
func (u *UI) completeDir(text string) []string {
	if text == "" {
		return nil
	}
	typedDir := text[:strings.LastIndex(text, "/")+1]
	prefix := text[len(typedDir):]
	dir := fsutils.ExpandHome(typedDir)
	if dir == "" || !filepath.IsAbs(dir) {
		dir = filepath.Join(u.commander.ActivePanel().Dir(), dir)
	}
	children, err := u.store.ReadDir(u.ctx, dir)
	if err != nil {
		return nil
	}
	var entries []string
	for _, child := range children {
		if !child.IsDir() || !strings.HasPrefix(child.Name(), prefix) {
			continue
		}
		entries = append(entries, typedDir+child.Name()+"/")
	}
	sort.Strings(entries)
	if len(entries) > maxCompletions {
		entries = entries[:maxCompletions]
	}
	return entries
}

func (u *UI) showHotlist() {
	items, err := getHotlist()
	if err != nil {
		u.status.showError(fmt.Errorf("failed to read hotlist: %w", err))
		return
	}
	u.hotlist.setItems(items)
	u.pages.ShowPage(pageHotlist)
	u.pages.SendToFront(pageHotlist)
	u.app.SetFocus(u.hotlist.list)
}

func (u *UI) selectHotlistItem(item hotlist.Item) {
	u.closeModal(pageHotlist)()
	u.gotoDir(item.Path)
}

func (u *UI) deleteHotlistItem(item hotlist.Item) {
	if err := deleteHotlist(item.Path); err != nil {
		u.status.showError(err)
		return
	}
	items, err := getHotlist()
	if err != nil {
		u.status.showError(err)
		return
	}
	u.hotlist.setItems(items)
}

func (u *UI) addToHotlist() {
	dir := u.commander.ActivePanel().Dir()
	if err := addHotlist(hotlist.Item{Path: dir}); err != nil {
		u.status.showError(fmt.Errorf("failed to add to hotlist: %w", err))
		return
	}
	u.status.showMessage("Added to hotlist: " + fsutils.CollapseHome(dir))
}

func (u *UI) quit() {
	u.saveState()
	u.app.Stop()
}
