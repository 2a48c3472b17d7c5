package tui

import (
	"fmt"

	"github.com/dumbcommander/dumbcommander/pkg/fsutils"
	"github.com/dumbcommander/dumbcommander/pkg/hotlist"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// hotlistView lists saved directories. Enter or a shortcut goes to one,
// Delete removes it, Esc closes the list.
type hotlistView struct {
	*tview.Grid
	list     *tview.List
	items    []hotlist.Item
	onSelect func(item hotlist.Item)
	onDelete func(item hotlist.Item)
	onClose  func()
}

func newHotlistView(onSelect, onDelete func(item hotlist.Item), onClose func()) *hotlistView {
	h := &hotlistView{
		list:     tview.NewList().SetSecondaryTextColor(tcell.ColorGray),
		onSelect: onSelect,
		onDelete: onDelete,
		onClose:  onClose,
	}
	h.list.SetBorder(true).
		SetTitle(" Hotlist ").
		SetTitleAlign(tview.AlignCenter)
	h.list.SetInputCapture(h.inputCapture)
	hint := tview.NewTextView().
		SetText("<enter> go  <del> remove  <esc> close").
		SetTextColor(tcell.ColorGray)
	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(h.list, 0, 1, true).
		AddItem(hint, 1, 0, false)
	h.Grid = tview.NewGrid().
		SetColumns(0, 60, 0).
		SetRows(0, 20, 0).
		AddItem(flex, 1, 1, 1, 1, 0, 0, true)
	return h
}

func (h *hotlistView) setItems(items []hotlist.Item) {
	h.items = items
	h.list.Clear()
	for _, item := range items {
		mainText := tview.Escape(item.Path)
		if item.Description != "" {
			mainText += fmt.Sprintf(" [darkgray::i]%s[-::-]", tview.Escape(item.Description))
		}
		secondText := fsutils.ExpandHome(item.Path)
		h.list.AddItem(mainText, secondText, item.Shortcut, func() {
			h.onSelect(item)
		})
	}
}

func (h *hotlistView) current() (hotlist.Item, bool) {
	i := h.list.GetCurrentItem()
	if i < 0 || i >= len(h.items) {
		return hotlist.Item{}, false
	}
	return h.items[i], true
}

func (h *hotlistView) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		h.onClose()
		return nil
	case tcell.KeyDelete:
		if item, ok := h.current(); ok {
			h.onDelete(item)
		}
		return nil
	case tcell.KeyRune:
		if item, ok := hotlist.FindByShortcut(h.items, event.Rune()); ok {
			h.onSelect(item)
			return nil
		}
	}
	return event
}
