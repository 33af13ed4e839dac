package game

// PlayedPiles tracks, per color, the highest rank played so far. Zero means
// nothing of that color has been played. Heights only ever go up.
type PlayedPiles struct {
	heights map[Color]int
}

func NewPlayedPiles() PlayedPiles {
	h := make(map[Color]int, len(Colors))
	for _, color := range Colors {
		h[color] = 0
	}
	return PlayedPiles{heights: h}
}

func (p PlayedPiles) Height(color Color) int {
	return p.heights[color]
}

// IsPlayable reports whether the card is the next rank for its color.
func (p PlayedPiles) IsPlayable(c Card) bool {
	return p.heights[c.Color] == c.Rank-1
}

// Add records a successful play. Callers must have checked IsPlayable.
func (p PlayedPiles) Add(c Card) {
	p.heights[c.Color] = c.Rank
}

// Score is the sum of all pile heights, 25 at most.
func (p PlayedPiles) Score() int {
	total := 0
	for _, h := range p.heights {
		total += h
	}
	return total
}

func (p PlayedPiles) clone() PlayedPiles {
	out := NewPlayedPiles()
	for color, h := range p.heights {
		out.heights[color] = h
	}
	return out
}
