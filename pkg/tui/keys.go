package tui

import (
	"github.com/dumbcommander/dumbcommander/pkg/commander"
	"github.com/gdamore/tcell/v2"
)

// translateKey maps a key press to a coordinator command.
func translateKey(event *tcell.EventKey) (commander.Command, bool) {
	alt := event.Modifiers()&tcell.ModAlt != 0
	switch event.Key() {
	case tcell.KeyUp:
		if !alt {
			return commander.MoveUp, true
		}
	case tcell.KeyDown:
		if !alt {
			return commander.MoveDown, true
		}
	case tcell.KeyLeft:
		if alt {
			return commander.SetActiveLeft, true
		}
	case tcell.KeyRight:
		if alt {
			return commander.SetActiveRight, true
		}
	case tcell.KeyEnter:
		return commander.Activate, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return commander.GoUp, true
	case tcell.KeyTab:
		return commander.ToggleActive, true
	case tcell.KeyCtrlR:
		return commander.Reload, true
	case tcell.KeyF3:
		return commander.View, true
	case tcell.KeyF4:
		return commander.Edit, true
	}
	return 0, false
}

type appAction int

const (
	actionNone appAction = iota
	actionGoto
	actionHotlist
	actionAddToHotlist
	actionHome
	actionRoot
	actionQuit
	actionPageUp
	actionPageDown
	actionFirst
	actionLast
)

// translateAppKey maps keys that open UI surfaces rather than drive the panels.
func translateAppKey(event *tcell.EventKey) appAction {
	alt := event.Modifiers()&tcell.ModAlt != 0
	switch event.Key() {
	case tcell.KeyCtrlG:
		return actionGoto
	case tcell.KeyCtrlBackslash:
		return actionHotlist
	case tcell.KeyCtrlD:
		return actionAddToHotlist
	case tcell.KeyF10:
		return actionQuit
	case tcell.KeyPgUp:
		return actionPageUp
	case tcell.KeyPgDn:
		return actionPageDown
	case tcell.KeyHome:
		return actionFirst
	case tcell.KeyEnd:
		return actionLast
	case tcell.KeyRune:
		if !alt {
			return actionNone
		}
		switch event.Rune() {
		case 'o':
			return actionGoto
		case 'x':
			return actionQuit
		case 'h', '~':
			return actionHome
		case 'r', '/':
			return actionRoot
		}
	}
	return actionNone
}
