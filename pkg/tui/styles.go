package tui

import (
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	FocusedBorderColor tcell.Color
	BlurBorderColor    tcell.Color
	TableHeaderColor   tcell.Color
	HotkeyColor        tcell.Color
	ParentRowColor     tcell.Color
	ErrorColor         tcell.Color
	StaleMarkerColor   tcell.Color
	IgnoredColor       tcell.Color
}

var Style = Styles{
	FocusedBorderColor: tcell.ColorCornflowerBlue,
	BlurBorderColor:    tcell.ColorGray,
	TableHeaderColor:   tcell.ColorWhiteSmoke,
	HotkeyColor:        tcell.ColorWhite,
	ParentRowColor:     tcell.ColorLightSkyBlue,
	ErrorColor:         tcell.ColorRed,
	StaleMarkerColor:   tcell.ColorYellow,
	IgnoredColor:       tcell.ColorDimGray,
}
