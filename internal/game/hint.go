package game

type HintKind string

const (
	HintKindColor HintKind = "color"
	HintKindRank  HintKind = "rank"
)

// Hint names either a color or a rank and is applied to the whole hand of the
// target player. It lives only in the action log once applied.
type Hint struct {
	Kind           HintKind `json:"kind"`
	Color          Color    `json:"color,omitempty"`
	Rank           int      `json:"rank,omitempty"`
	TargetPlayerID string   `json:"target_player_id"`
}

// Matches reports whether the hinted attribute is true of the card.
func (h Hint) Matches(c Card) bool {
	if h.Kind == HintKindColor {
		return c.Color == h.Color
	}
	return c.Rank == h.Rank
}

func (h Hint) learned() HintState {
	if h.Kind == HintKindColor {
		return HintColorKnown
	}
	return HintRankKnown
}
