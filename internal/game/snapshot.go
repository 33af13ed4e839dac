package game

import "fmt"

// Snapshot is the wire form of a GameState: a structural deep copy with maps
// flattened to order-stable pair lists, so a round trip reconstructs an
// identical aggregate.

// PileCount is one played pile, by color, in canonical color order.
type PileCount struct {
	Color  Color `json:"color"`
	Height int   `json:"height"`
}

// ColorCounts is a per-rank count vector for one color, rank 1 first.
type ColorCounts struct {
	Color  Color `json:"color"`
	Counts []int `json:"counts"`
}

type Snapshot struct {
	Running        bool           `json:"running"`
	FinalCountdown int            `json:"final_countdown"`
	TurnIndex      int            `json:"turn_index"`
	Players        []Player       `json:"players"`
	HintsMax       int            `json:"hints_max"`
	Hints          int            `json:"hints"`
	Bombs          int            `json:"bombs"`
	Deck           []Card         `json:"deck"`
	DiscardPile    []Card         `json:"discard_pile"`
	PlayedPiles    []PileCount    `json:"played_piles"`
	Log            []ActionRecord `json:"log"`

	// Unseen is derived (deck plus hands, counted per color and rank) and is
	// recomputed rather than restored on deserialize.
	Unseen []ColorCounts `json:"unseen,omitempty"`
}

// Snapshot deep-copies the aggregate into its wire form.
func (g *GameState) Snapshot() (Snapshot, error) {
	s := Snapshot{
		Running:        g.Running,
		FinalCountdown: g.FinalCountdown,
		TurnIndex:      g.TurnIndex,
		HintsMax:       g.HintsMax,
		Hints:          g.Hints,
		Bombs:          g.Bombs,
		Players:        make([]Player, len(g.Players)),
		Deck:           make([]Card, len(g.Deck)),
		DiscardPile:    make([]Card, len(g.DiscardPile)),
		PlayedPiles:    make([]PileCount, 0, len(Colors)),
		Log:            make([]ActionRecord, len(g.Log)),
	}
	for i, p := range g.Players {
		s.Players[i] = *p.clone()
	}
	copy(s.Deck, g.Deck)
	copy(s.DiscardPile, g.DiscardPile)
	for _, color := range Colors {
		s.PlayedPiles = append(s.PlayedPiles, PileCount{Color: color, Height: g.Piles.Height(color)})
	}
	copy(s.Log, g.Log)

	tracker, err := g.UnseenTracker()
	if err != nil {
		return Snapshot{}, err
	}
	for _, color := range Colors {
		s.Unseen = append(s.Unseen, ColorCounts{Color: color, Counts: tracker.Counts(color)})
	}
	return s, nil
}

// FromSnapshot is the exact inverse of Snapshot. A payload that fails shape
// validation is rejected whole rather than reconstructed partially.
func FromSnapshot(s Snapshot) (*GameState, error) {
	if err := validateSnapshot(s); err != nil {
		return nil, err
	}
	g := &GameState{
		Running:        s.Running,
		FinalCountdown: s.FinalCountdown,
		TurnIndex:      s.TurnIndex,
		HintsMax:       s.HintsMax,
		Hints:          s.Hints,
		Bombs:          s.Bombs,
		Players:        make([]*Player, len(s.Players)),
		Deck:           make([]Card, len(s.Deck)),
		DiscardPile:    make([]Card, len(s.DiscardPile)),
		Piles:          NewPlayedPiles(),
		Log:            make([]ActionRecord, len(s.Log)),
	}
	for i := range s.Players {
		g.Players[i] = s.Players[i].clone()
	}
	copy(g.Deck, s.Deck)
	copy(g.DiscardPile, s.DiscardPile)
	for _, pile := range s.PlayedPiles {
		g.Piles.heights[pile.Color] = pile.Height
	}
	copy(g.Log, s.Log)
	return g, nil
}

func validateSnapshot(s Snapshot) error {
	if s.HintsMax <= 0 {
		return malformed("hints_max missing")
	}
	if s.Hints < 0 || s.Hints > s.HintsMax {
		return malformed("hints out of range")
	}
	if s.Bombs < 0 || s.Bombs > MaxBombs {
		return malformed("bombs out of range")
	}
	if s.FinalCountdown < -1 {
		return malformed("final_countdown out of range")
	}
	if len(s.PlayedPiles) != len(Colors) {
		return malformed("played_piles incomplete")
	}
	seen := map[Color]bool{}
	for _, pile := range s.PlayedPiles {
		if !validColor(pile.Color) || seen[pile.Color] {
			return malformed("played_piles color invalid")
		}
		if pile.Height < 0 || pile.Height > MaxRank {
			return malformed("pile height out of range")
		}
		seen[pile.Color] = true
	}
	if s.Running && (s.TurnIndex < 0 || s.TurnIndex >= len(s.Players)) {
		return malformed("turn_index out of range")
	}
	for _, p := range s.Players {
		if p.ID == "" {
			return malformed("player id missing")
		}
		for _, c := range p.Hand {
			if err := validateCard(c); err != nil {
				return err
			}
		}
	}
	for _, c := range s.Deck {
		if err := validateCard(c); err != nil {
			return err
		}
	}
	for _, c := range s.DiscardPile {
		if err := validateCard(c); err != nil {
			return err
		}
	}
	return nil
}

func validateCard(c Card) error {
	if c.ID == "" {
		return malformed("card id missing")
	}
	if !validColor(c.Color) {
		return malformed("card color invalid")
	}
	if c.Rank < MinRank || c.Rank > MaxRank {
		return malformed("card rank out of range")
	}
	if !validHintState(c.HintState) {
		return malformed("card hint state invalid")
	}
	return nil
}

func malformed(detail string) error {
	return fmt.Errorf("%w: %s", ErrMalformedSnapshot, detail)
}
