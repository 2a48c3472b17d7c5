package tui

import (
	"github.com/dumbcommander/dumbcommander/pkg/colorizer"
	"github.com/dumbcommander/dumbcommander/pkg/files"
	"github.com/dumbcommander/dumbcommander/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	colName = iota
	colSize
	colPerm
	columnCount
)

const parentRowName = ".."

// listingContent presents a Listing as table rows: a header, the optional
// ".." row, then one row per entry.
type listingContent struct {
	tview.TableContentReadOnly
	listing   *files.Listing
	parentRow bool
	colorizer *colorizer.Colorizer
	ignored   func(name string, isDir bool) bool
}

func (c *listingContent) firstEntryRow() int {
	if c.parentRow {
		return 2
	}
	return 1
}

// entryIndex maps a table row to a listing index. isParent reports the ".." row.
func (c *listingContent) entryIndex(row int) (index int, isParent bool, ok bool) {
	if c.parentRow && row == 1 {
		return 0, true, true
	}
	index = row - c.firstEntryRow()
	if index < 0 || index >= c.listing.Len() {
		return 0, false, false
	}
	return index, false, true
}

func (c *listingContent) rowOf(index int) int {
	return index + c.firstEntryRow()
}

func (c *listingContent) GetRowCount() int {
	return c.firstEntryRow() + c.listing.Len()
}

func (c *listingContent) GetColumnCount() int {
	return columnCount
}

func (c *listingContent) GetCell(row, column int) *tview.TableCell {
	if row == 0 {
		return headerCell(column)
	}
	index, isParent, ok := c.entryIndex(row)
	if !ok {
		return nil
	}
	if isParent {
		if column != colName {
			return tview.NewTableCell("")
		}
		return tview.NewTableCell(" " + parentRowName).
			SetTextColor(Style.ParentRowColor).
			SetExpansion(1)
	}
	entry, _ := c.listing.At(index)
	color := c.entryColor(entry)
	switch column {
	case colName:
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		return tview.NewTableCell(" " + tview.Escape(name)).
			SetTextColor(color).
			SetExpansion(1)
	case colSize:
		var text string
		if entry.IsDir() {
			text = entry.TypeLabel()
		} else if size, ok := entry.Size(); ok {
			text = fsutils.GetSizeShortText(size)
		}
		return tview.NewTableCell(text).
			SetTextColor(color).
			SetAlign(tview.AlignRight)
	case colPerm:
		text := ""
		if perm, ok := entry.Perm(); ok {
			text = perm.String()
		}
		return tview.NewTableCell(text).SetTextColor(color)
	}
	return nil
}

// entryColor dims entries git ignores; others follow the colorizer rules.
func (c *listingContent) entryColor(entry files.Entry) tcell.Color {
	if c.ignored != nil && c.ignored(entry.Name(), entry.IsDir()) {
		return Style.IgnoredColor
	}
	return c.colorizer.Color(entry.Name(), entry.IsDir())
}

func headerCell(column int) *tview.TableCell {
	var title string
	align := tview.AlignLeft
	switch column {
	case colName:
		title = " Name"
	case colSize:
		title = "Size"
		align = tview.AlignRight
	case colPerm:
		title = "Perm"
	default:
		return nil
	}
	return tview.NewTableCell(title).
		SetTextColor(Style.TableHeaderColor).
		SetAlign(align).
		SetSelectable(false)
}
