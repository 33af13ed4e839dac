package game

import "errors"

// Validation failures. These never mutate state and are never echoed to
// clients; the room drops the action and the next broadcast is the only
// feedback a desynced or hostile client gets.
var (
	ErrNotPlayersTurn   = errors.New("not this player's turn")
	ErrCardNotOwned     = errors.New("card not in player's hand")
	ErrNoHintsAvailable = errors.New("no hint tokens left")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrNotRunning       = errors.New("game is not running")
	ErrAlreadyRunning   = errors.New("game already running")
	ErrNotEnoughPlayers = errors.New("need at least two players")
	ErrRoomFull         = errors.New("room is full")
	ErrUnsupportedAct   = errors.New("unsupported action")
)

// Invariant violations. Reaching one of these past the validator means a core
// bug; the room logs loudly and tears itself down.
var (
	ErrCardNotFound      = errors.New("card does not exist in hand")
	ErrInvalidRank       = errors.New("card rank out of range")
	ErrEmptyPileRemoval  = errors.New("removing card from empty pile")
	ErrMalformedSnapshot = errors.New("malformed snapshot")
)
