package tui

import (
	"fmt"

	"github.com/dumbcommander/dumbcommander/pkg/colorizer"
	"github.com/dumbcommander/dumbcommander/pkg/commander"
	"github.com/dumbcommander/dumbcommander/pkg/fsutils"
	"github.com/dumbcommander/dumbcommander/pkg/gitutils"
	"github.com/dumbcommander/dumbcommander/pkg/panel"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// panelView draws one panel. It never changes the panel itself: key and
// mouse input is turned into calls on the panel or the coordinator by UI.
type panelView struct {
	*tview.Table
	side    commander.Side
	panel   *panel.Panel
	content *listingContent
	active  bool
	stale   bool
	git     *gitutils.RepoStatus
}

func newPanelView(side commander.Side, p *panel.Panel, c *colorizer.Colorizer) *panelView {
	v := &panelView{
		Table:   tview.NewTable(),
		side:    side,
		panel:   p,
		content: &listingContent{colorizer: c},
	}
	v.content.ignored = func(name string, isDir bool) bool {
		return v.git.Ignored(name, isDir)
	}
	v.SetContent(v.content)
	v.SetFixed(1, 0)
	v.SetBorder(true)
	v.SetTitleAlign(tview.AlignLeft)
	v.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		// Navigation goes through the panel so the table never moves on its own.
		return nil
	})
	v.refresh()
	return v
}

// refresh re-reads listing and cursor from the panel.
func (v *panelView) refresh() {
	v.content.listing = v.panel.Listing()
	v.content.parentRow = v.panel.ShowsParentRow()
	v.stale = false
	v.updateTitle()
	v.syncCursor()
}

// syncCursor moves the table selection to the panel cursor.
func (v *panelView) syncCursor() {
	cursor := v.panel.Cursor()
	if !cursor.IsSet() {
		v.SetSelectable(false, false)
		v.ScrollToBeginning()
		return
	}
	v.SetSelectable(true, false)
	if cursor.IsParent() {
		v.Select(1, 0)
		return
	}
	i, _ := cursor.Index()
	v.Select(v.content.rowOf(i), 0)
}

func (v *panelView) setActive(active bool) {
	v.active = active
	if active {
		v.SetBorderColor(Style.FocusedBorderColor)
		v.SetTitleColor(Style.FocusedBorderColor)
	} else {
		v.SetBorderColor(Style.BlurBorderColor)
		v.SetTitleColor(Style.BlurBorderColor)
	}
}

func (v *panelView) setStale(stale bool) {
	v.stale = stale
	v.updateTitle()
}

func (v *panelView) setGitStatus(status *gitutils.RepoStatus) {
	v.git = status
	v.updateTitle()
}

func (v *panelView) updateTitle() {
	dir := v.panel.Dir()
	if dir == "" {
		v.SetTitle(fmt.Sprintf(" %s ", v.side))
		return
	}
	title := " " + tview.Escape(fsutils.CollapseHome(dir))
	if v.git != nil {
		title += v.git.String()
	}
	if v.stale {
		title += fmt.Sprintf("[%s]*[-]", Style.StaleMarkerColor)
	}
	v.SetTitle(title + " ")
}

// rowAt returns the panel target under a screen position.
func (v *panelView) rowAt(x, y int) (index int, isParent bool, ok bool) {
	if !v.InRect(x, y) {
		return 0, false, false
	}
	row, _ := v.CellAt(x, y)
	if row <= 0 {
		return 0, false, false
	}
	return v.content.entryIndex(row)
}

// pageSize is the number of entry rows visible at once.
func (v *panelView) pageSize() int {
	_, _, _, height := v.GetInnerRect()
	return max(height-1, 1)
}
