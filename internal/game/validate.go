package game

// Pure legality predicates, run before any mutation. A failing predicate means
// the action is dropped without feedback.

func IsPlayersTurn(g *GameState, playerID string) bool {
	if g.TurnIndex < 0 || g.TurnIndex >= len(g.Players) {
		return false
	}
	return g.Players[g.TurnIndex].ID == playerID
}

func OwnsCard(g *GameState, playerID, cardID string) bool {
	p := g.PlayerByID(playerID)
	return p != nil && p.HasCard(cardID)
}

func CanGiveHint(g *GameState) bool {
	return g.Hints > 0
}

// ValidateAction is the full legality gate for one action against the current
// state. It never mutates.
func ValidateAction(g *GameState, a Action) error {
	if !g.Running {
		return ErrNotRunning
	}
	if !IsPlayersTurn(g, a.Actor()) {
		return ErrNotPlayersTurn
	}
	switch act := a.(type) {
	case PlayAction:
		if !OwnsCard(g, act.PlayerID, act.CardID) {
			return ErrCardNotOwned
		}
	case DiscardAction:
		if !OwnsCard(g, act.PlayerID, act.CardID) {
			return ErrCardNotOwned
		}
	case HintAction:
		if !CanGiveHint(g) {
			return ErrNoHintsAvailable
		}
		if g.PlayerByID(act.Hint.TargetPlayerID) == nil {
			return ErrPlayerNotFound
		}
	}
	return nil
}
