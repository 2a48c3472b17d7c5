package tui

import (
	"testing"

	"github.com/dumbcommander/dumbcommander/pkg/colorizer"
	"github.com/dumbcommander/dumbcommander/pkg/files"
	"github.com/stretchr/testify/assert"
)

func newTestListing() *files.Listing {
	return files.NewListing("/home/u", []files.Entry{
		files.NewEntry("/home/u", "docs", true, files.WithPermissions(0o755)),
		files.NewEntry("/home/u", "notes.txt", false, files.WithSize(2048), files.WithPermissions(0o644)),
		files.NewEntry("/home/u", "[odd]", false),
	})
}

func TestListingContent_Rows(t *testing.T) {
	t.Parallel()

	t.Run("without_parent_row", func(t *testing.T) {
		c := &listingContent{listing: newTestListing()}
		assert.Equal(t, 4, c.GetRowCount())
		assert.Equal(t, columnCount, c.GetColumnCount())
		assert.Equal(t, 1, c.rowOf(0))

		index, isParent, ok := c.entryIndex(1)
		assert.True(t, ok)
		assert.False(t, isParent)
		assert.Equal(t, 0, index)

		_, _, ok = c.entryIndex(4)
		assert.False(t, ok)
		_, _, ok = c.entryIndex(0)
		assert.False(t, ok)
	})

	t.Run("with_parent_row", func(t *testing.T) {
		c := &listingContent{listing: newTestListing(), parentRow: true}
		assert.Equal(t, 5, c.GetRowCount())
		assert.Equal(t, 2, c.rowOf(0))

		_, isParent, ok := c.entryIndex(1)
		assert.True(t, ok)
		assert.True(t, isParent)

		index, isParent, ok := c.entryIndex(4)
		assert.True(t, ok)
		assert.False(t, isParent)
		assert.Equal(t, 2, index)
	})

	t.Run("nil_listing", func(t *testing.T) {
		c := &listingContent{}
		assert.Equal(t, 1, c.GetRowCount())
		_, _, ok := c.entryIndex(1)
		assert.False(t, ok)
		assert.Nil(t, c.GetCell(1, colName))
	})
}

func TestListingContent_GetCell(t *testing.T) {
	t.Parallel()
	c := &listingContent{listing: newTestListing(), parentRow: true}

	t.Run("header", func(t *testing.T) {
		cell := c.GetCell(0, colName)
		assert.Equal(t, " Name", cell.Text)
		assert.True(t, cell.NotSelectable)
		assert.Equal(t, "Size", c.GetCell(0, colSize).Text)
		assert.Equal(t, "Perm", c.GetCell(0, colPerm).Text)
		assert.Nil(t, c.GetCell(0, columnCount))
	})

	t.Run("parent_row", func(t *testing.T) {
		assert.Equal(t, " ..", c.GetCell(1, colName).Text)
		assert.Equal(t, "", c.GetCell(1, colSize).Text)
	})

	t.Run("directory", func(t *testing.T) {
		assert.Equal(t, " docs/", c.GetCell(2, colName).Text)
		assert.Equal(t, "Folder", c.GetCell(2, colSize).Text)
		assert.Equal(t, "rwxr-xr-x", c.GetCell(2, colPerm).Text)
	})

	t.Run("file", func(t *testing.T) {
		assert.Equal(t, " notes.txt", c.GetCell(3, colName).Text)
		assert.NotEmpty(t, c.GetCell(3, colSize).Text)
		assert.Equal(t, "rw-r--r--", c.GetCell(3, colPerm).Text)
	})

	t.Run("without_metadata", func(t *testing.T) {
		assert.Equal(t, " [odd[]", c.GetCell(4, colName).Text)
		assert.Equal(t, "", c.GetCell(4, colSize).Text)
		assert.Equal(t, "", c.GetCell(4, colPerm).Text)
	})

	t.Run("out_of_range", func(t *testing.T) {
		assert.Nil(t, c.GetCell(5, colName))
		assert.Nil(t, c.GetCell(2, columnCount))
	})
}

func TestListingContent_IgnoredEntries(t *testing.T) {
	t.Parallel()
	var asked []string
	c := &listingContent{
		listing: newTestListing(),
		ignored: func(name string, isDir bool) bool {
			asked = append(asked, name)
			return name == "notes.txt" && !isDir
		},
	}
	notes, _ := c.listing.At(1)
	docs, _ := c.listing.At(0)
	assert.Equal(t, Style.IgnoredColor, c.entryColor(notes))
	assert.Equal(t, colorizer.DirColor, c.entryColor(docs))
	assert.Equal(t, []string{"notes.txt", "docs"}, asked)
	assert.Equal(t, " notes.txt", c.GetCell(2, colName).Text)
}
