package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggle(t *testing.T) {
	s := NewListState(0)

	assert.True(t, s.Toggle("DV1"))
	assert.True(t, s.Toggle("BO2"))
	assert.True(t, s.IsSelected("DV1"))
	assert.Equal(t, []string{"DV1", "BO2"}, s.Selected())

	assert.False(t, s.Toggle("DV1"))
	assert.False(t, s.IsSelected("DV1"))
	assert.Equal(t, []string{"BO2"}, s.Selected())

	s.Clear()
	assert.Empty(t, s.Selected())
}

func TestDeselect(t *testing.T) {
	s := NewListState(12)
	s.Toggle("A")
	s.Toggle("B")
	s.Toggle("C")

	s.Deselect("A", "C", "missing")
	assert.Equal(t, []string{"B"}, s.Selected())
}

func TestCanEditAndDelete(t *testing.T) {
	s := NewListState(12)
	assert.False(t, s.CanEdit())
	assert.False(t, s.CanDelete())

	s.Toggle("A")
	assert.True(t, s.CanEdit())
	assert.False(t, s.CanDelete(), "empty collection")

	s.SetTotal(3)
	assert.True(t, s.CanDelete())

	s.Toggle("B")
	assert.False(t, s.CanEdit())
	assert.True(t, s.CanDelete())
}

func TestPageCount(t *testing.T) {
	s := NewListState(0)
	assert.Equal(t, DefaultPageSize, s.PageSize())

	for total, want := range map[int]int{0: 0, 1: 1, 12: 1, 13: 2, 24: 2, 25: 3} {
		s.SetTotal(total)
		assert.Equal(t, want, s.PageCount(), "total %d", total)
	}
}

func TestSetPageClamps(t *testing.T) {
	s := NewListState(12)
	s.SetTotal(30)

	assert.Equal(t, 3, s.SetPage(3))
	assert.Equal(t, 3, s.SetPage(9))
	assert.Equal(t, 1, s.SetPage(0))
	assert.Equal(t, 1, s.SetPage(-4))
}

func TestShrinkingCollectionClampsPage(t *testing.T) {
	s := NewListState(12)
	s.SetTotal(25)
	s.SetPage(3)

	s.SetTotal(13)
	assert.Equal(t, 2, s.Page())

	s.SetTotal(0)
	assert.Equal(t, 1, s.Page())
	s.SetTotal(30)
	assert.Equal(t, 30, s.Total())
	assert.Equal(t, 1, s.Page(), "growing does not move the page")
}
