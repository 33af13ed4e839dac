package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHintStateMerge(t *testing.T) {
	cases := []struct {
		name    string
		current HintState
		learned HintState
		want    HintState
	}{
		{"none learns color", HintNone, HintColorKnown, HintColorKnown},
		{"none learns rank", HintNone, HintRankKnown, HintRankKnown},
		{"color learns rank", HintColorKnown, HintRankKnown, HintBoth},
		{"rank learns color", HintRankKnown, HintColorKnown, HintBoth},
		{"color learns color again", HintColorKnown, HintColorKnown, HintColorKnown},
		{"rank learns rank again", HintRankKnown, HintRankKnown, HintRankKnown},
		{"both stays both on color", HintBoth, HintColorKnown, HintBoth},
		{"both stays both on rank", HintBoth, HintRankKnown, HintBoth},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.current.Merge(tc.learned))
		})
	}
}

// Merge is monotonic: no input ever moves knowledge down the lattice.
func TestHintStateMerge_NeverRegresses(t *testing.T) {
	level := map[HintState]int{HintNone: 0, HintColorKnown: 1, HintRankKnown: 1, HintBoth: 2}
	states := []HintState{HintNone, HintColorKnown, HintRankKnown, HintBoth}
	for _, current := range states {
		for _, learned := range []HintState{HintColorKnown, HintRankKnown} {
			got := current.Merge(learned)
			assert.GreaterOrEqual(t, level[got], level[current],
				"merge(%s, %s) regressed to %s", current, learned, got)
		}
	}
}

func TestHintMatches(t *testing.T) {
	card := NewCard(ColorBlue, 3)

	assert.True(t, Hint{Kind: HintKindColor, Color: ColorBlue}.Matches(card))
	assert.False(t, Hint{Kind: HintKindColor, Color: ColorRed}.Matches(card))
	assert.True(t, Hint{Kind: HintKindRank, Rank: 3}.Matches(card))
	assert.False(t, Hint{Kind: HintKindRank, Rank: 5}.Matches(card))
}
