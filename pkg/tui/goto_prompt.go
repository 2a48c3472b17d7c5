package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// gotoPrompt asks for a directory to open in the active panel.
type gotoPrompt struct {
	*tview.Grid
	input    *tview.InputField
	onSubmit func(path string)
	onCancel func()
}

func newGotoPrompt(onSubmit func(path string), onCancel func(), complete func(text string) []string) *gotoPrompt {
	g := &gotoPrompt{
		input:    tview.NewInputField().SetLabel("Directory: "),
		onSubmit: onSubmit,
		onCancel: onCancel,
	}
	g.input.SetFieldBackgroundColor(tcell.ColorDarkBlue)
	g.input.SetBorder(true).
		SetTitle(" Go to Directory ").
		SetTitleAlign(tview.AlignCenter)
	g.input.SetDoneFunc(g.done)
	if complete != nil {
		g.input.SetAutocompleteFunc(complete)
	}
	g.Grid = tview.NewGrid().
		SetColumns(0, 60, 0).
		SetRows(0, 3, 0).
		AddItem(g.input, 1, 1, 1, 1, 0, 0, true)
	return g
}

// reset clears the field and puts initial text into it.
func (g *gotoPrompt) reset(text string) {
	g.input.SetText(text)
}

func (g *gotoPrompt) done(key tcell.Key) {
	switch key {
	case tcell.KeyEnter:
		if text := g.input.GetText(); text != "" {
			g.onSubmit(text)
			return
		}
		g.onCancel()
	case tcell.KeyEscape:
		g.onCancel()
	}
}
