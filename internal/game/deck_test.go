package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck_Composition(t *testing.T) {
	deck := NewDeck()
	require.Len(t, deck, DeckSize)

	counts := map[Color]map[int]int{}
	ids := map[string]bool{}
	for _, c := range deck {
		if counts[c.Color] == nil {
			counts[c.Color] = map[int]int{}
		}
		counts[c.Color][c.Rank]++
		assert.False(t, ids[c.ID], "card ids must be unique")
		ids[c.ID] = true
		assert.Equal(t, HintNone, c.HintState)
	}

	for _, color := range Colors {
		assert.Equal(t, 3, counts[color][1])
		assert.Equal(t, 2, counts[color][2])
		assert.Equal(t, 2, counts[color][3])
		assert.Equal(t, 2, counts[color][4])
		assert.Equal(t, 1, counts[color][5])
	}
}

func TestShuffledDeck_SameComposition(t *testing.T) {
	deck := ShuffledDeck()
	require.Len(t, deck, DeckSize)

	perColor := map[Color]int{}
	for _, c := range deck {
		perColor[c.Color]++
	}
	for _, color := range Colors {
		assert.Equal(t, 10, perColor[color])
	}
}
