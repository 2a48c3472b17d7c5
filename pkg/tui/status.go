package tui

import (
	"fmt"

	"github.com/dumbcommander/dumbcommander/pkg/fsutils"
	"github.com/dumbcommander/dumbcommander/pkg/panel"
	"github.com/rivo/tview"
)

// statusLine shows either the last error or the entry under the active cursor.
type statusLine struct {
	*tview.TextView
}

func newStatusLine() *statusLine {
	return &statusLine{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(false),
	}
}

func (s *statusLine) showError(err error) {
	s.SetText(fmt.Sprintf("[%s]%s[-]", Style.ErrorColor, tview.Escape(err.Error())))
}

func (s *statusLine) showMessage(msg string) {
	s.SetText(tview.Escape(msg))
}

func (s *statusLine) showSelection(p *panel.Panel) {
	if p.Cursor().IsParent() {
		s.SetText(parentRowName)
		return
	}
	entry, ok := p.Selected()
	if !ok {
		s.SetText(tview.Escape(fsutils.CollapseHome(p.Dir())))
		return
	}
	text := tview.Escape(entry.Name())
	if size, ok := entry.Size(); ok {
		text += "  " + fsutils.GetSizeLongText(size)
	} else if entry.IsDir() {
		text += "  " + entry.TypeLabel()
	}
	if perm, ok := entry.Perm(); ok {
		text += "  " + perm.String()
	}
	if t := entry.ModTime(); !t.IsZero() {
		text += "  " + t.Format("2006-01-02 15:04")
	}
	s.SetText(text)
}
