package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor(t *testing.T) {
	t.Parallel()

	assert.False(t, NoSelection.IsSet())
	assert.False(t, NoSelection.IsParent())
	_, ok := NoSelection.Index()
	assert.False(t, ok)
	assert.Equal(t, "none", NoSelection.String())

	c := At(3)
	assert.True(t, c.IsSet())
	i, ok := c.Index()
	assert.True(t, ok)
	assert.Equal(t, 3, i)
	assert.Equal(t, "#3", c.String())

	assert.True(t, ParentRow.IsSet())
	assert.True(t, ParentRow.IsParent())
	_, ok = ParentRow.Index()
	assert.False(t, ok)
	assert.Equal(t, "..", ParentRow.String())
}

func TestSelectedFile(t *testing.T) {
	t.Parallel()
	s := NewSelectedFile()
	_, ok := s.Path()
	assert.False(t, ok)

	s.Set("/a")
	s.Set("/b")
	path, ok := s.Path()
	assert.True(t, ok)
	assert.Equal(t, "/b", path)
}

func TestDirection_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "down", Down.String())
}
