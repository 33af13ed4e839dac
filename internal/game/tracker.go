package game

// CardTracker counts copies per color and rank. Rooms use it to tell clients
// how many of each card are still unseen (in the deck or in hands); tests use
// it to check card conservation.
type CardTracker struct {
	counts map[Color][]int
	total  int
}

// NewDeckTracker starts from the full deck composition.
func NewDeckTracker() *CardTracker {
	t := NewEmptyTracker()
	for _, color := range Colors {
		for rank := MinRank; rank <= MaxRank; rank++ {
			t.counts[color][rank-1] = rankCounts[rank]
			t.total += rankCounts[rank]
		}
	}
	return t
}

func NewEmptyTracker() *CardTracker {
	counts := make(map[Color][]int, len(Colors))
	for _, color := range Colors {
		counts[color] = make([]int, MaxRank)
	}
	return &CardTracker{counts: counts}
}

func (t *CardTracker) Add(c Card) error {
	if c.Rank < MinRank || c.Rank > MaxRank {
		return ErrInvalidRank
	}
	t.counts[c.Color][c.Rank-1]++
	t.total++
	return nil
}

func (t *CardTracker) Remove(c Card) error {
	if c.Rank < MinRank || c.Rank > MaxRank {
		return ErrInvalidRank
	}
	if t.counts[c.Color][c.Rank-1] <= 0 {
		return ErrEmptyPileRemoval
	}
	t.counts[c.Color][c.Rank-1]--
	t.total--
	return nil
}

func (t *CardTracker) Count(color Color, rank int) int {
	if rank < MinRank || rank > MaxRank {
		return 0
	}
	return t.counts[color][rank-1]
}

func (t *CardTracker) Total() int {
	return t.total
}

// Counts returns the per-rank counts for a color, MinRank first.
func (t *CardTracker) Counts(color Color) []int {
	out := make([]int, MaxRank)
	copy(out, t.counts[color])
	return out
}

// UnseenTracker counts the cards not yet revealed to the table: everything
// except the discard pile and the played piles. This is the card-counting aid
// the client shows next to the discard pile.
func (g *GameState) UnseenTracker() (*CardTracker, error) {
	t := NewDeckTracker()
	for _, c := range g.DiscardPile {
		if err := t.Remove(c); err != nil {
			return nil, err
		}
	}
	for _, color := range Colors {
		for rank := MinRank; rank <= g.Piles.Height(color); rank++ {
			if err := t.Remove(Card{Color: color, Rank: rank}); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}
