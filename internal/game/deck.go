package game

import "math/rand"

// rankCounts is how many copies of each rank exist per color: three 1s, two
// each of 2/3/4, a single 5. Ten cards per color, fifty total.
var rankCounts = [MaxRank + 1]int{0, 3, 2, 2, 2, 1}

// DeckSize is the fixed size of a fresh deck.
const DeckSize = 50

// NewDeck returns the full unshuffled deck in canonical color/rank order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, color := range Colors {
		for rank := MinRank; rank <= MaxRank; rank++ {
			for i := 0; i < rankCounts[rank]; i++ {
				deck = append(deck, NewCard(color, rank))
			}
		}
	}
	return deck
}

// ShuffledDeck returns a freshly built deck in random order.
func ShuffledDeck() []Card {
	deck := NewDeck()
	rand.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}
