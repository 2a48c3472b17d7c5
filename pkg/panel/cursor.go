package panel

import "strconv"

type cursorState uint8

const (
	cursorNone cursorState = iota
	cursorIndex
	cursorParent
)

// Cursor points at a row of a panel: nothing, an entry index,
// or the parent-directory row when that row is shown.
type Cursor struct {
	state cursorState
	index int
}

// NoSelection is the cursor of a freshly loaded listing.
var NoSelection = Cursor{}

// ParentRow selects the ".." row.
var ParentRow = Cursor{state: cursorParent}

func At(i int) Cursor {
	return Cursor{state: cursorIndex, index: i}
}

// Index returns the selected entry index, false when no entry is selected.
func (c Cursor) Index() (int, bool) {
	if c.state != cursorIndex {
		return -1, false
	}
	return c.index, true
}

func (c Cursor) IsParent() bool {
	return c.state == cursorParent
}

func (c Cursor) IsSet() bool {
	return c.state != cursorNone
}

func (c Cursor) String() string {
	switch c.state {
	case cursorIndex:
		return "#" + strconv.Itoa(c.index)
	case cursorParent:
		return ".."
	default:
		return "none"
	}
}
