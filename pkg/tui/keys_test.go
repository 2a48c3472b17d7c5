package tui

import (
	"testing"

	"github.com/dumbcommander/dumbcommander/pkg/commander"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestTranslateKey(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		event  *tcell.EventKey
		expect commander.Command
		ok     bool
	}{
		{name: "up", event: tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), expect: commander.MoveUp, ok: true},
		{name: "down", event: tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), expect: commander.MoveDown, ok: true},
		{name: "alt_up", event: tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModAlt)},
		{name: "alt_left", event: tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModAlt), expect: commander.SetActiveLeft, ok: true},
		{name: "alt_right", event: tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModAlt), expect: commander.SetActiveRight, ok: true},
		{name: "plain_left", event: tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)},
		{name: "enter", event: tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), expect: commander.Activate, ok: true},
		{name: "backspace", event: tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), expect: commander.GoUp, ok: true},
		{name: "backspace2", event: tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), expect: commander.GoUp, ok: true},
		{name: "tab", event: tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), expect: commander.ToggleActive, ok: true},
		{name: "ctrl_r", event: tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl), expect: commander.Reload, ok: true},
		{name: "f3", event: tcell.NewEventKey(tcell.KeyF3, 0, tcell.ModNone), expect: commander.View, ok: true},
		{name: "f4", event: tcell.NewEventKey(tcell.KeyF4, 0, tcell.ModNone), expect: commander.Edit, ok: true},
		{name: "rune", event: tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := translateKey(tt.event)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expect, cmd)
			}
		})
	}
}

func TestTranslateAppKey(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		event  *tcell.EventKey
		expect appAction
	}{
		{name: "ctrl_g", event: tcell.NewEventKey(tcell.KeyCtrlG, 0, tcell.ModCtrl), expect: actionGoto},
		{name: "ctrl_backslash", event: tcell.NewEventKey(tcell.KeyCtrlBackslash, 0, tcell.ModCtrl), expect: actionHotlist},
		{name: "ctrl_d", event: tcell.NewEventKey(tcell.KeyCtrlD, 0, tcell.ModCtrl), expect: actionAddToHotlist},
		{name: "f10", event: tcell.NewEventKey(tcell.KeyF10, 0, tcell.ModNone), expect: actionQuit},
		{name: "pgup", event: tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone), expect: actionPageUp},
		{name: "pgdn", event: tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), expect: actionPageDown},
		{name: "home", event: tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), expect: actionFirst},
		{name: "end", event: tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone), expect: actionLast},
		{name: "alt_o", event: tcell.NewEventKey(tcell.KeyRune, 'o', tcell.ModAlt), expect: actionGoto},
		{name: "alt_x", event: tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), expect: actionQuit},
		{name: "alt_h", event: tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModAlt), expect: actionHome},
		{name: "alt_tilde", event: tcell.NewEventKey(tcell.KeyRune, '~', tcell.ModAlt), expect: actionHome},
		{name: "alt_r", event: tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModAlt), expect: actionRoot},
		{name: "alt_slash", event: tcell.NewEventKey(tcell.KeyRune, '/', tcell.ModAlt), expect: actionRoot},
		{name: "alt_unknown", event: tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModAlt), expect: actionNone},
		{name: "plain_o", event: tcell.NewEventKey(tcell.KeyRune, 'o', tcell.ModNone), expect: actionNone},
		{name: "escape", event: tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), expect: actionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, translateAppKey(tt.event))
		})
	}
}
