package ws

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/perezful/hanabi-backend/internal/game"
	"github.com/perezful/hanabi-backend/internal/hub"
	"github.com/perezful/hanabi-backend/internal/room"
	"github.com/perezful/hanabi-backend/internal/types"
)

type Options struct {
	// OriginPatterns is passed through to the websocket accept check.
	OriginPatterns []string
	// ClientBuffer is the outbox depth per connection; a client that falls
	// this far behind gets dropped by the room.
	ClientBuffer int
	Logger       *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.ClientBuffer <= 0 {
		o.ClientBuffer = 8
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

const writeTimeout = 3 * time.Second

// Handler upgrades the connection, joins the named room (creating it on first
// join) and then shuttles events both ways until the client goes away.
func Handler(h *hub.Hub, opts Options) http.HandlerFunc {
	opts = opts.withDefaults()
	log := opts.Logger

	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("room")
		if code == "" {
			http.Error(w, "missing room", http.StatusBadRequest)
			return
		}
		name := r.URL.Query().Get("name")
		if name == "" {
			http.Error(w, "missing name", http.StatusBadRequest)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: opts.OriginPatterns,
		})
		if err != nil {
			log.Debug("websocket accept failed", zap.Error(err))
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		// Room creation happens on first join, only once the socket is up.
		reply := make(chan *room.Room, 1)
		h.Inbox() <- hub.EnsureRoom{Code: code, Reply: reply}
		rm := <-reply

		out := make(chan room.Event, opts.ClientBuffer)
		connID := randID(8)

		rm.Inbox() <- room.Join{ConnID: connID, Name: name, Outbox: out}
		defer func() { rm.Inbox() <- room.Leave{ConnID: connID} }()

		// Writer goroutine: drains the room's events for this connection.
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for ev := range out {
				msg := toServerMessage(ev)
				payload, _ := json.Marshal(msg)
				ctx, cancel := context.WithTimeout(writeCtx, writeTimeout)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
				if ev.Type == room.EventFullRoom {
					// Room refused the seat; nothing more will come.
					conn.Close(websocket.StatusNormalClosure, "room full")
					return
				}
			}
			// Outbox closed: the room is gone or dropped us.
			conn.Close(websocket.StatusGoingAway, "room closed")
		}()

		// Reader loop.
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				writeError(r.Context(), conn, "bad json")
				continue
			}

			msg, ok := toRoomMsg(connID, cm)
			if !ok {
				writeError(r.Context(), conn, "unknown type")
				continue
			}
			rm.Inbox() <- msg
		}
	}
}

func toServerMessage(ev room.Event) types.ServerMessage {
	switch ev.Type {
	case room.EventJoined:
		return types.ServerMessage{Type: "JoinedRoom", PlayerID: ev.PlayerID}
	case room.EventFullRoom:
		return types.ServerMessage{Type: "FullRoom"}
	default:
		return types.ServerMessage{Type: "GameState", Version: ev.Version, State: ev.State}
	}
}

// toRoomMsg translates a wire message into a room mailbox message. The acting
// player is always resolved from the connection, never trusted from the wire.
func toRoomMsg(connID string, m types.ClientMessage) (room.Msg, bool) {
	switch m.Type {
	case "StartGame":
		return room.StartGame{ConnID: connID}, true
	case "PlayCard":
		if m.CardID == "" {
			return nil, false
		}
		return room.FromClient{ConnID: connID, Act: game.PlayAction{CardID: m.CardID}}, true
	case "DiscardCard":
		if m.CardID == "" {
			return nil, false
		}
		return room.FromClient{ConnID: connID, Act: game.DiscardAction{CardID: m.CardID}}, true
	case "GiveHint":
		if m.Hint == nil {
			return nil, false
		}
		return room.FromClient{ConnID: connID, Act: game.HintAction{Hint: *m.Hint}}, true
	default:
		return nil, false
	}
}

func writeError(ctx context.Context, conn *websocket.Conn, reason string) {
	payload, _ := json.Marshal(types.ServerMessage{Type: "Error", Error: reason})
	_ = conn.Write(ctx, websocket.MessageText, payload)
}

func randID(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
