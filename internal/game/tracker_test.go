package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckTracker_StartsFull(t *testing.T) {
	tr := NewDeckTracker()
	assert.Equal(t, DeckSize, tr.Total())
	for _, color := range Colors {
		assert.Equal(t, []int{3, 2, 2, 2, 1}, tr.Counts(color))
	}
}

func TestTracker_AddRemove(t *testing.T) {
	tr := NewEmptyTracker()
	card := NewCard(ColorGreen, 2)

	require.NoError(t, tr.Add(card))
	assert.Equal(t, 1, tr.Count(ColorGreen, 2))
	assert.Equal(t, 1, tr.Total())

	require.NoError(t, tr.Remove(card))
	assert.Equal(t, 0, tr.Count(ColorGreen, 2))
	assert.Equal(t, 0, tr.Total())
}

func TestTracker_InvariantViolations(t *testing.T) {
	tr := NewEmptyTracker()

	require.ErrorIs(t, tr.Add(Card{Color: ColorRed, Rank: 0}), ErrInvalidRank)
	require.ErrorIs(t, tr.Add(Card{Color: ColorRed, Rank: 6}), ErrInvalidRank)
	require.ErrorIs(t, tr.Remove(Card{Color: ColorRed, Rank: 1}), ErrEmptyPileRemoval)
}

func TestUnseenTracker_AccountsForTable(t *testing.T) {
	g := runningGame(t)

	tr, err := g.UnseenTracker()
	require.NoError(t, err)
	assert.Equal(t, DeckSize, tr.Total(), "nothing revealed yet")

	actor := g.WhoseTurn()
	discarded := actor.Hand[0]
	require.NoError(t, g.Apply(DiscardAction{PlayerID: actor.ID, CardID: discarded.ID}))

	tr, err = g.UnseenTracker()
	require.NoError(t, err)
	assert.Equal(t, DeckSize-1, tr.Total())
	assert.Equal(t, rankCounts[discarded.Rank]-1, tr.Count(discarded.Color, discarded.Rank))
}
