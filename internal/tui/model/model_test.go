package model

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoxDroid/mealr/internal/catalog"
	"github.com/VoxDroid/mealr/internal/match"
	"github.com/VoxDroid/mealr/internal/tui/adapters"
)

func newModel(t *testing.T) *UIModel {
	t.Helper()
	c := catalog.New(
		catalog.Entry{Name: "A", Tags: []string{"점심", "매운맛"}},
		catalog.Entry{Name: "B", Tags: []string{"점심"}},
		catalog.Entry{Name: "C", Tags: []string{"저녁", "매운맛"}},
	)
	return New(context.Background(), adapters.Static{Catalog: c, Origin: "test"}, rand.New(rand.NewPCG(1, 2)))
}

func TestToggleAndSelected(t *testing.T) {
	m := newModel(t)
	assert.True(t, m.Toggle("매운맛"))
	assert.True(t, m.Toggle("점심"))
	assert.Equal(t, []string{"매운맛", "점심"}, m.Selected())
	assert.True(t, m.IsSelected("점심"))

	assert.False(t, m.Toggle("매운맛"))
	assert.Equal(t, []string{"점심"}, m.Selected())

	m.Clear()
	assert.Empty(t, m.Selected())
}

func TestResults(t *testing.T) {
	m := newModel(t)
	_, err := m.Results()
	require.ErrorIs(t, err, match.ErrNoSelection)

	m.Toggle("점심")
	m.Toggle("매운맛")
	res, err := m.Results()
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, "A", res[0].Name)
	assert.Equal(t, 100.0, res[0].MatchRatio)
	// B and C tie at one match and keep catalog order
	assert.Equal(t, "B", res[1].Name)
	assert.Equal(t, "C", res[2].Name)

	s := m.Summary(res)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 100.0, s.MaxRatio)
}

func TestRandomAndGroups(t *testing.T) {
	m := newModel(t)
	e, err := m.Random()
	require.NoError(t, err)
	_, ok := m.Catalog().Get(e.Name)
	assert.True(t, ok)

	assert.Equal(t, "test", m.Origin())
	groups := m.Groups()
	last := groups[len(groups)-1]
	assert.Equal(t, catalog.Uncategorized, last.Name)
	assert.Equal(t, []string{"매운맛"}, last.Tags)
}

func TestRandomOnEmptyCatalog(t *testing.T) {
	m := New(context.Background(), adapters.Static{Catalog: catalog.New(), Origin: "empty"}, nil)
	_, err := m.Random()
	assert.ErrorIs(t, err, match.ErrEmptyCatalog)
}
