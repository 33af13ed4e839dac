package game

type ActionKind string

const (
	ActionPlay    ActionKind = "play"
	ActionDiscard ActionKind = "discard"
	ActionHint    ActionKind = "hint"
)

// Action is one of the three things a player can do on their turn.
type Action interface {
	Kind() ActionKind
	Actor() string
}

type PlayAction struct {
	PlayerID string
	CardID   string
}

type DiscardAction struct {
	PlayerID string
	CardID   string
}

type HintAction struct {
	PlayerID string
	Hint     Hint
}

func (a PlayAction) Kind() ActionKind    { return ActionPlay }
func (a PlayAction) Actor() string       { return a.PlayerID }
func (a DiscardAction) Kind() ActionKind { return ActionDiscard }
func (a DiscardAction) Actor() string    { return a.PlayerID }
func (a HintAction) Kind() ActionKind    { return ActionHint }
func (a HintAction) Actor() string       { return a.PlayerID }

// ActionRecord is the flattened form an action takes in the append-only log.
type ActionRecord struct {
	PlayerID string     `json:"player_id"`
	Kind     ActionKind `json:"kind"`
	CardID   string     `json:"card_id,omitempty"`
	Hint     *Hint      `json:"hint,omitempty"`
}

func recordOf(a Action) ActionRecord {
	rec := ActionRecord{PlayerID: a.Actor(), Kind: a.Kind()}
	switch act := a.(type) {
	case PlayAction:
		rec.CardID = act.CardID
	case DiscardAction:
		rec.CardID = act.CardID
	case HintAction:
		hint := act.Hint
		rec.Hint = &hint
	}
	return rec
}
