package game

const (
	// MaxHints is the hint token ceiling; discards and played 5s return
	// tokens but never past this.
	MaxHints = 8
	// MaxBombs is the number of misplays allowed before the game is lost.
	MaxBombs = 3
	// MaxSeats is the most players a room will hold.
	MaxSeats = 5
	// MinPlayers is the fewest players a game can start with.
	MinPlayers = 2
	// PerfectScore is every pile at height five.
	PerfectScore = 25
)

// GameState is the authoritative aggregate for one room. All mutation goes
// through Start, Apply and the seat methods; the room actor serializes access
// so no locking happens here.
type GameState struct {
	Running        bool
	FinalCountdown int
	TurnIndex      int
	Players        []*Player
	HintsMax       int
	Hints          int
	Bombs          int
	Deck           []Card
	DiscardPile    []Card
	Piles          PlayedPiles
	Log            []ActionRecord
}

// New returns a lobby-state game with a freshly shuffled deck.
func New() *GameState {
	return &GameState{
		FinalCountdown: -1,
		HintsMax:       MaxHints,
		Hints:          MaxHints,
		Bombs:          MaxBombs,
		Deck:           ShuffledDeck(),
		DiscardPile:    []Card{},
		Piles:          NewPlayedPiles(),
		Log:            []ActionRecord{},
	}
}

// handSize: small groups see more of the deck.
func handSize(playerCount int) int {
	if playerCount <= 3 {
		return 5
	}
	return 4
}

// Start deals hands and begins the turn rotation. The final countdown is
// primed at playerCount+1 so that once the deck empties, every player gets
// exactly one more turn.
func (g *GameState) Start() error {
	if g.Running {
		return ErrAlreadyRunning
	}
	if len(g.Players) < MinPlayers {
		return ErrNotEnoughPlayers
	}
	g.Running = true
	g.FinalCountdown = len(g.Players) + 1
	g.TurnIndex = 0
	size := handSize(len(g.Players))
	for _, p := range g.Players {
		for i := 0; i < size; i++ {
			card, ok := g.drawCard()
			if !ok {
				break
			}
			p.AddToHand(card)
		}
	}
	return nil
}

// Apply runs one validated action: mutates, logs, advances the turn and ticks
// the end-game countdown. Callers must validate first; errors out of here are
// invariant violations, not user mistakes.
func (g *GameState) Apply(a Action) error {
	if !g.Running {
		return ErrNotRunning
	}
	var err error
	switch act := a.(type) {
	case PlayAction:
		err = g.playCard(act.PlayerID, act.CardID)
	case DiscardAction:
		err = g.discardCard(act.PlayerID, act.CardID)
	case HintAction:
		err = g.giveHint(act.Hint)
	default:
		return ErrUnsupportedAct
	}
	if err != nil {
		return err
	}
	g.Log = append(g.Log, recordOf(a))
	g.TurnIndex = (g.TurnIndex + 1) % len(g.Players)
	if len(g.Deck) == 0 {
		g.FinalCountdown--
	}
	if g.IsGameOver() {
		g.Running = false
	}
	return nil
}

func (g *GameState) playCard(playerID, cardID string) error {
	p := g.PlayerByID(playerID)
	if p == nil {
		return ErrPlayerNotFound
	}
	card, slot, err := p.RemoveFromHand(cardID)
	if err != nil {
		return err
	}
	if g.Piles.IsPlayable(card) {
		g.Piles.Add(card)
		if card.Rank == MaxRank {
			g.addHint()
		}
	} else {
		g.DiscardPile = append(g.DiscardPile, card)
		g.Bombs--
	}
	g.drawInto(p, slot)
	return nil
}

func (g *GameState) discardCard(playerID, cardID string) error {
	p := g.PlayerByID(playerID)
	if p == nil {
		return ErrPlayerNotFound
	}
	card, slot, err := p.RemoveFromHand(cardID)
	if err != nil {
		return err
	}
	g.DiscardPile = append(g.DiscardPile, card)
	g.addHint()
	g.drawInto(p, slot)
	return nil
}

func (g *GameState) giveHint(h Hint) error {
	target := g.PlayerByID(h.TargetPlayerID)
	if target == nil {
		return ErrPlayerNotFound
	}
	g.Hints--
	learned := h.learned()
	for i := range target.Hand {
		if h.Matches(target.Hand[i]) {
			target.Hand[i].HintState = target.Hand[i].HintState.Merge(learned)
		}
	}
	return nil
}

// drawInto replaces a played or discarded card with a fresh draw in the same
// slot. An empty deck is the normal end-game case: the hand just shrinks.
func (g *GameState) drawInto(p *Player, slot int) {
	card, ok := g.drawCard()
	if !ok {
		return
	}
	p.InsertInHand(card, slot)
}

func (g *GameState) drawCard() (Card, bool) {
	if len(g.Deck) == 0 {
		return Card{}, false
	}
	card := g.Deck[len(g.Deck)-1]
	g.Deck = g.Deck[:len(g.Deck)-1]
	return card, true
}

func (g *GameState) addHint() {
	if g.Hints < g.HintsMax {
		g.Hints++
	}
}

// Score is the sum of pile heights.
func (g *GameState) Score() int {
	return g.Piles.Score()
}

// IsGameOver: out of bombs, out of end-game turns, or a perfect score.
func (g *GameState) IsGameOver() bool {
	return g.Bombs == 0 || g.FinalCountdown == 0 || g.Score() == PerfectScore
}

// WhoseTurn returns the player whose turn it is. Calling this with no players
// or a turn index out of range is a core bug, hence the panic.
func (g *GameState) WhoseTurn() *Player {
	if g.TurnIndex < 0 || g.TurnIndex >= len(g.Players) {
		panic("turn index out of bounds")
	}
	return g.Players[g.TurnIndex]
}

// TurnsPassed is how many actions have been taken this game.
func (g *GameState) TurnsPassed() int {
	return len(g.Log)
}

// LastAction is the most recent log entry, or nil before the first action.
func (g *GameState) LastAction() *ActionRecord {
	if len(g.Log) == 0 {
		return nil
	}
	rec := g.Log[len(g.Log)-1]
	return &rec
}

// IsFull reports whether a joiner can be seated: five seats max in the lobby,
// and during a running game only a vacated seat can be taken.
func (g *GameState) IsFull() bool {
	if g.Running {
		return g.AnyEmptySeat() == nil
	}
	return len(g.Players) >= MaxSeats
}

// AllSeatsEmpty reports whether nobody occupied remains in the room.
func (g *GameState) AllSeatsEmpty() bool {
	for _, p := range g.Players {
		if !p.EmptySeat {
			return false
		}
	}
	return true
}

func (g *GameState) AddPlayer(p *Player) error {
	if len(g.Players) >= MaxSeats {
		return ErrRoomFull
	}
	g.Players = append(g.Players, p)
	return nil
}

// RemovePlayerByConn drops a seat outright. Only legal in the lobby; running
// games vacate seats instead so hands stay dealt.
func (g *GameState) RemovePlayerByConn(connID string) {
	for i, p := range g.Players {
		if p.ConnID == connID {
			g.Players = append(g.Players[:i], g.Players[i+1:]...)
			return
		}
	}
}

// AnyEmptySeat returns the first vacated seat in seat order, or nil.
func (g *GameState) AnyEmptySeat() *Player {
	for _, p := range g.Players {
		if p.EmptySeat {
			return p
		}
	}
	return nil
}

func (g *GameState) PlayerByID(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (g *GameState) PlayerByConn(connID string) *Player {
	for _, p := range g.Players {
		if p.ConnID == connID {
			return p
		}
	}
	return nil
}

func (g *GameState) PlayerWithCard(cardID string) *Player {
	for _, p := range g.Players {
		if p.HasCard(cardID) {
			return p
		}
	}
	return nil
}
