package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/perezful/hanabi-backend/internal/game"
	"github.com/perezful/hanabi-backend/internal/hub"
	"github.com/perezful/hanabi-backend/internal/room"
)

const viewTimeout = 250 * time.Millisecond

// RoomSummary is the admin view of one room.
type RoomSummary struct {
	Code    string `json:"code"`
	Seated  int    `json:"seated"`
	Seats   int    `json:"seats"`
	Running bool   `json:"running"`
	Score   int    `json:"score"`
	Version int    `json:"version"`
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func ListRooms(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, struct {
			Rooms []RoomSummary `json:"rooms"`
		}{Rooms: summaries(h, nil)})
	}
}

// ListWaitingRooms lists rooms a new player could actually join: lobbies with
// a free seat, or running games with a vacated seat to take over.
func ListWaitingRooms(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		joinable := func(v room.View) bool {
			if v.Snapshot.Running {
				for _, p := range v.Snapshot.Players {
					if p.EmptySeat {
						return true
					}
				}
				return false
			}
			return len(v.Snapshot.Players) < game.MaxSeats
		}
		writeJSON(w, http.StatusOK, struct {
			Rooms []RoomSummary `json:"rooms"`
		}{Rooms: summaries(h, joinable)})
	}
}

func ClearRooms(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reply := make(chan int, 1)
		h.Inbox() <- hub.ClearRooms{Reply: reply}
		writeJSON(w, http.StatusOK, struct {
			Cleared int `json:"cleared"`
		}{Cleared: <-reply})
	}
}

func summaries(h *hub.Hub, keep func(room.View) bool) []RoomSummary {
	reply := make(chan []*room.Room, 1)
	h.Inbox() <- hub.ListRooms{Reply: reply}

	out := []RoomSummary{}
	for _, rm := range <-reply {
		v, ok := viewOf(rm, viewTimeout)
		if !ok {
			// Room is tearing down; skip it rather than stall the request.
			continue
		}
		if keep != nil && !keep(v) {
			continue
		}
		seated := 0
		for _, p := range v.Snapshot.Players {
			if !p.EmptySeat {
				seated++
			}
		}
		out = append(out, RoomSummary{
			Code:    v.Code,
			Seated:  seated,
			Seats:   game.MaxSeats,
			Running: v.Snapshot.Running,
			Score:   pileScore(v.Snapshot),
			Version: v.Version,
		})
	}
	return out
}

func pileScore(s game.Snapshot) int {
	total := 0
	for _, pile := range s.PlayedPiles {
		total += pile.Height
	}
	return total
}

func viewOf(rm *room.Room, within time.Duration) (room.View, bool) {
	reply := make(chan room.View, 1)
	select {
	case rm.Inbox() <- room.GetView{Reply: reply}:
	case <-time.After(within):
		return room.View{}, false
	}
	select {
	case v := <-reply:
		return v, true
	case <-time.After(within):
		return room.View{}, false
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
