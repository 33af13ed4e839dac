package room

import (
	"context"

	"go.uber.org/zap"

	"github.com/perezful/hanabi-backend/internal/game"
)

// Msg is anything that can land in a room's mailbox. One goroutine per room
// drains it, so everything in here runs serialized against the game state.
type Msg interface{ isRoomMsg() }

type Join struct {
	ConnID string
	Name   string
	Outbox chan Event
}

type Leave struct{ ConnID string }

type StartGame struct{ ConnID string }

// FromClient carries a player action. The actor's player id is resolved from
// the connection inside the room; clients cannot act for another seat.
type FromClient struct {
	ConnID string
	Act    game.Action
}

type GetView struct {
	Reply chan View
}

type Shutdown struct{}

func (Join) isRoomMsg()       {}
func (Leave) isRoomMsg()      {}
func (StartGame) isRoomMsg()  {}
func (FromClient) isRoomMsg() {}
func (GetView) isRoomMsg()    {}
func (Shutdown) isRoomMsg()   {}

type EventType string

const (
	EventJoined   EventType = "joined"
	EventFullRoom EventType = "full_room"
	EventState    EventType = "state"
)

// Event is what a room pushes to a connection's outbox. Joined and FullRoom
// go to a single connection; State goes to the whole room.
type Event struct {
	Type     EventType
	PlayerID string
	Version  int
	State    *game.Snapshot
}

// View is a read-only reflection of room internals for tests and the admin
// endpoints, fetched through the mailbox to stay race-free.
type View struct {
	Code       string
	Version    int
	NumClients int
	Snapshot   game.Snapshot
}

type Room struct {
	code    string
	inbox   chan Msg
	state   *game.GameState
	version int
	clients map[string]chan Event
	log     *zap.Logger
	onClose func()
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewRoom starts the room goroutine. onClose runs once when the room tears
// itself down (last occupant left, game finished, or an invariant broke) so
// the registry can drop its entry.
func NewRoom(parent context.Context, code string, inboxSize int, log *zap.Logger, onClose func()) *Room {
	ctx, cancel := context.WithCancel(parent)
	r := &Room{
		code:    code,
		inbox:   make(chan Msg, inboxSize),
		state:   game.New(),
		clients: make(map[string]chan Event),
		log:     log.With(zap.String("room", code)),
		onClose: onClose,
		ctx:     ctx,
		cancel:  cancel,
	}
	go r.loop()
	return r
}

func (r *Room) Inbox() chan<- Msg { return r.inbox }

func (r *Room) Code() string { return r.code }

func (r *Room) loop() {
	for {
		select {
		case <-r.ctx.Done():
			r.shutdown()
			return

		case m := <-r.inbox:
			switch msg := m.(type) {
			case Join:
				r.handleJoin(msg)

			case Leave:
				if r.handleLeave(msg) {
					return
				}

			case StartGame:
				if err := r.state.Start(); err != nil {
					r.log.Debug("start rejected", zap.Error(err))
					break
				}
				r.log.Info("game started", zap.Int("players", len(r.state.Players)))
				if r.broadcast() {
					return
				}

			case FromClient:
				if r.handleAction(msg) {
					return
				}

			case GetView:
				snap, err := r.state.Snapshot()
				if err != nil {
					r.log.Error("snapshot failed", zap.Error(err))
				}
				msg.Reply <- View{
					Code:       r.code,
					Version:    r.version,
					NumClients: len(r.clients),
					Snapshot:   snap,
				}

			case Shutdown:
				r.shutdown()
				return
			}
		}
	}
}

func (r *Room) handleJoin(msg Join) {
	if r.state.IsFull() {
		// Full-room signal to the joiner only; the room itself is untouched.
		r.send(msg.Outbox, Event{Type: EventFullRoom})
		return
	}

	var p *game.Player
	if r.state.Running {
		// Mid-game joins take over a vacated seat: hand, hint knowledge and
		// turn position all carry over to the new occupant.
		p = r.state.AnyEmptySeat()
		p.Occupy(msg.ConnID, msg.Name)
	} else {
		p = game.NewPlayer(msg.ConnID, msg.Name)
		if err := r.state.AddPlayer(p); err != nil {
			r.send(msg.Outbox, Event{Type: EventFullRoom})
			return
		}
	}

	r.clients[msg.ConnID] = msg.Outbox
	r.send(msg.Outbox, Event{Type: EventJoined, PlayerID: p.ID})
	r.log.Info("player joined", zap.String("player", p.ID), zap.String("name", msg.Name))
	r.broadcast()
}

// handleLeave returns true when the room tore itself down.
func (r *Room) handleLeave(msg Leave) bool {
	changed := false
	if ch, ok := r.clients[msg.ConnID]; ok {
		close(ch)
		delete(r.clients, msg.ConnID)
		changed = true
	}

	p := r.state.PlayerByConn(msg.ConnID)
	if p != nil {
		changed = true
		if r.state.Running {
			p.Vacate()
			r.log.Info("seat vacated", zap.String("player", p.ID))
		} else {
			r.state.RemovePlayerByConn(msg.ConnID)
			r.log.Info("seat removed", zap.String("player", p.ID))
		}
	}

	if r.state.AllSeatsEmpty() {
		r.shutdown()
		return true
	}
	if !changed {
		// A connection that was never seated (e.g. bounced off a full room).
		return false
	}
	return r.broadcast()
}

// handleAction returns true when the room tore itself down.
func (r *Room) handleAction(msg FromClient) bool {
	p := r.state.PlayerByConn(msg.ConnID)
	if p == nil || p.EmptySeat {
		return false
	}
	act := stampActor(msg.Act, p.ID)

	if err := game.ValidateAction(r.state, act); err != nil {
		// Deliberately silent toward the client: the next authoritative
		// broadcast is all the feedback a desynced sender gets.
		r.log.Debug("action rejected", zap.String("player", p.ID), zap.Error(err))
		return false
	}

	if err := r.state.Apply(act); err != nil {
		// Past the validator this is a core bug, fatal for the room.
		r.log.Error("invariant violation applying action",
			zap.String("player", p.ID), zap.Error(err))
		r.shutdown()
		return true
	}

	if r.broadcast() {
		return true
	}

	if r.state.IsGameOver() {
		r.log.Info("game over",
			zap.Int("score", r.state.Score()),
			zap.Int("bombs", r.state.Bombs))
		r.shutdown()
		return true
	}
	return false
}

// stampActor rebinds the action to the seat resolved from the connection.
func stampActor(a game.Action, playerID string) game.Action {
	switch act := a.(type) {
	case game.PlayAction:
		act.PlayerID = playerID
		return act
	case game.DiscardAction:
		act.PlayerID = playerID
		return act
	case game.HintAction:
		act.PlayerID = playerID
		return act
	}
	return a
}

// broadcast pushes the current snapshot to every connection. Returns true if
// a snapshot failure tore the room down.
func (r *Room) broadcast() bool {
	snap, err := r.state.Snapshot()
	if err != nil {
		r.log.Error("snapshot failed", zap.Error(err))
		r.shutdown()
		return true
	}
	r.version++
	ev := Event{Type: EventState, Version: r.version, State: &snap}
	for id, ch := range r.clients {
		select {
		case ch <- ev:
		default:
			// Slow or stuck client: drop it rather than stall the room.
			close(ch)
			delete(r.clients, id)
		}
	}
	return false
}

// send delivers a targeted event without ever blocking the loop.
func (r *Room) send(ch chan Event, ev Event) {
	select {
	case ch <- ev:
	default:
	}
}

func (r *Room) shutdown() {
	for id, ch := range r.clients {
		close(ch)
		delete(r.clients, id)
	}
	r.cancel()
	if r.onClose != nil {
		r.onClose()
	}
	r.log.Info("room closed")
}
