package hub

import (
	"context"

	"go.uber.org/zap"

	"github.com/perezful/hanabi-backend/internal/room"
)

type HubMsg interface{ isHubMsg() }

// EnsureRoom creates the room on first join and returns the existing one
// otherwise.
type EnsureRoom struct {
	Code  string
	Reply chan *room.Room
}

type GetRoom struct {
	Code  string
	Reply chan *room.Room // may receive nil
}

type RemoveRoom struct {
	Code string
}

// ListRooms replies with the live room handles; callers query each room's
// view themselves so the hub loop never blocks on a room.
type ListRooms struct {
	Reply chan []*room.Room
}

// ClearRooms shuts every room down and replies with how many were dropped.
type ClearRooms struct {
	Reply chan int
}

type ShutdownHub struct{}

func (EnsureRoom) isHubMsg()  {}
func (GetRoom) isHubMsg()     {}
func (RemoveRoom) isHubMsg()  {}
func (ListRooms) isHubMsg()   {}
func (ClearRooms) isHubMsg()  {}
func (ShutdownHub) isHubMsg() {}

type Options struct {
	RoomInboxSize int
}

func (o Options) withDefaults() Options {
	if o.RoomInboxSize <= 0 {
		o.RoomInboxSize = 64
	}
	return o
}

// Hub owns the code→room map. All structural changes go through its inbox, so
// map access never races with room creation or teardown.
type Hub struct {
	inbox  chan HubMsg
	rooms  map[string]*room.Room
	opts   Options
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub(parent context.Context, log *zap.Logger, opts Options) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:  make(chan HubMsg, 64),
		rooms:  make(map[string]*room.Room),
		opts:   opts.withDefaults(),
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			h.shutdown()
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case EnsureRoom:
				if rm := h.rooms[msg.Code]; rm != nil {
					msg.Reply <- rm
					break
				}
				msg.Reply <- h.createRoom(msg.Code)

			case GetRoom:
				msg.Reply <- h.rooms[msg.Code]

			case RemoveRoom:
				delete(h.rooms, msg.Code)

			case ListRooms:
				out := make([]*room.Room, 0, len(h.rooms))
				for _, rm := range h.rooms {
					out = append(out, rm)
				}
				msg.Reply <- out

			case ClearRooms:
				n := len(h.rooms)
				for _, rm := range h.rooms {
					rm.Inbox() <- room.Shutdown{}
				}
				clear(h.rooms)
				h.log.Info("cleared rooms", zap.Int("count", n))
				msg.Reply <- n

			case ShutdownHub:
				h.shutdown()
				return
			}
		}
	}
}

func (h *Hub) createRoom(code string) *room.Room {
	// Removal must not block a closing room if the hub itself is going away.
	onClose := func() {
		select {
		case h.inbox <- RemoveRoom{Code: code}:
		case <-h.ctx.Done():
		}
	}
	rm := room.NewRoom(h.ctx, code, h.opts.RoomInboxSize, h.log, onClose)
	h.rooms[code] = rm
	h.log.Info("room created", zap.String("room", code))
	return rm
}

func (h *Hub) shutdown() {
	for _, rm := range h.rooms {
		rm.Inbox() <- room.Shutdown{}
	}
	clear(h.rooms)
	h.cancel()
}
