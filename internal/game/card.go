package game

import "github.com/google/uuid"

type Color string

const (
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorWhite  Color = "white"
)

// Colors is the canonical ordering used for dealing and serialization.
var Colors = []Color{ColorRed, ColorYellow, ColorGreen, ColorBlue, ColorWhite}

func validColor(c Color) bool {
	for _, known := range Colors {
		if c == known {
			return true
		}
	}
	return false
}

// HintState is what the holder of a card has learned about it through hints.
// It only ever moves up the lattice None -> ColorKnown/RankKnown -> Both.
type HintState string

const (
	HintNone       HintState = "none"
	HintColorKnown HintState = "color"
	HintRankKnown  HintState = "rank"
	HintBoth       HintState = "both"
)

func validHintState(h HintState) bool {
	switch h {
	case HintNone, HintColorKnown, HintRankKnown, HintBoth:
		return true
	}
	return false
}

// Merge joins a newly learned attribute into the current knowledge state.
// The result is always >= the current state, so knowledge never regresses.
func (h HintState) Merge(learned HintState) HintState {
	if learned != HintColorKnown && learned != HintRankKnown {
		return h
	}
	switch h {
	case HintNone:
		return learned
	case HintColorKnown:
		if learned == HintRankKnown {
			return HintBoth
		}
		return h
	case HintRankKnown:
		if learned == HintColorKnown {
			return HintBoth
		}
		return h
	default:
		return HintBoth
	}
}

const (
	MinRank = 1
	MaxRank = 5
)

type Card struct {
	ID        string    `json:"id"`
	Color     Color     `json:"color"`
	Rank      int       `json:"rank"`
	HintState HintState `json:"hint_state"`
}

func NewCard(color Color, rank int) Card {
	return Card{
		ID:        uuid.NewString(),
		Color:     color,
		Rank:      rank,
		HintState: HintNone,
	}
}
