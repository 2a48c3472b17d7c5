package viewers

import (
	"github.com/dumbcommander/dumbcommander/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TextViewer is the read-only file view opened with F3.
type TextViewer struct {
	*tview.TextView
	options Options
	shown   int // incremented by Show; renders of earlier files are dropped
}

func NewTextViewer(o Options) *TextViewer {
	v := &TextViewer{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(true).
			SetScrollable(true),
		options: o,
	}
	v.SetBorder(true)
	return v
}

// Show loads path in the background and draws it through queueUpdateDraw.
// Show and the queued draws must run on the same goroutine.
func (v *TextViewer) Show(path string, queueUpdateDraw func(func())) {
	v.shown++
	shown := v.shown
	v.SetTitle(" " + tview.Escape(fsutils.CollapseHome(path)) + " ")
	v.SetTextColor(tview.Styles.PrimaryTextColor)
	v.SetText("Loading...")
	go func() {
		text, err := Render(path, v.options)
		queueUpdateDraw(func() {
			if shown != v.shown {
				return
			}
			if err != nil {
				v.showError(err.Error())
				return
			}
			v.SetTextColor(tview.Styles.PrimaryTextColor)
			v.SetDynamicColors(true)
			v.SetText(text)
			v.ScrollToBeginning()
		})
	}()
}

func (v *TextViewer) showError(text string) {
	v.SetDynamicColors(false)
	v.SetText(text)
	v.SetTextColor(tcell.ColorRed)
}
