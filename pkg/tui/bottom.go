package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type MenuItem struct {
	Title   string
	HotKeys []string
	Action  func()
}

// bottom is the function key bar. Every item is a clickable region.
type bottom struct {
	*tview.TextView
	fkMenuItems  []MenuItem
	altMenuItems []MenuItem
}

func newBottom(fkMenuItems, altMenuItems []MenuItem) *bottom {
	b := &bottom{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetRegions(true).
			SetWrap(false).
			SetTextColor(tcell.ColorSlateGray),
		fkMenuItems:  fkMenuItems,
		altMenuItems: altMenuItems,
	}
	b.SetHighlightedFunc(b.highlighted)
	b.render()
	return b
}

func (b *bottom) render() {
	var sb strings.Builder
	sb.WriteString(renderMenuItems(b.fkMenuItems))
	if len(b.altMenuItems) > 0 {
		sb.WriteString(" | [DarkGray]Alt[-]+: ")
		sb.WriteString(renderMenuItems(b.altMenuItems))
	}
	b.SetText(sb.String())
}

func regionID(hotKey string) string {
	switch hotKey {
	case "/":
		return "root"
	case "~":
		return "home"
	}
	// Region IDs only allow letters, digits and a few separators.
	return strings.NewReplacer("^", "ctrl-", "\\", "backslash").Replace(hotKey)
}

func renderMenuItems(menuItems []MenuItem) string {
	const separator = "┊"
	parts := make([]string, 0, len(menuItems))
	for _, mi := range menuItems {
		title := tview.Escape(mi.Title)
		for _, key := range mi.HotKeys {
			hotkeyText := fmt.Sprintf("[%s]%s[-]", Style.HotkeyColor, key)
			title = strings.Replace(title, key, hotkeyText, 1)
		}
		parts = append(parts, fmt.Sprintf(`["%s"]%s[""]`, regionID(mi.HotKeys[0]), title))
	}
	return strings.Join(parts, separator)
}

func (b *bottom) highlighted(added, _, _ []string) {
	if len(added) == 0 {
		return
	}
	region := added[0]
	b.Highlight()
	for _, items := range [][]MenuItem{b.fkMenuItems, b.altMenuItems} {
		for _, mi := range items {
			if regionID(mi.HotKeys[0]) == region && mi.Action != nil {
				mi.Action()
				return
			}
		}
	}
}
