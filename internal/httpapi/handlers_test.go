package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/perezful/hanabi-backend/internal/hub"
	"github.com/perezful/hanabi-backend/internal/room"
	"github.com/perezful/hanabi-backend/internal/ws"
)

type roomsResponse struct {
	Rooms []RoomSummary `json:"rooms"`
}

func setup(t *testing.T) (*hub.Hub, http.Handler) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	h := hub.NewHub(ctx, zap.NewNop(), hub.Options{})
	return h, SetupRoutes(h, ws.Options{})
}

func ensureRoom(t *testing.T, h *hub.Hub, code string) *room.Room {
	t.Helper()
	reply := make(chan *room.Room, 1)
	h.Inbox() <- hub.EnsureRoom{Code: code, Reply: reply}
	select {
	case rm := <-reply:
		return rm
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("timed out creating room")
		return nil // unreachable
	}
}

func seatPlayer(t *testing.T, rm *room.Room, connID, name string) {
	t.Helper()
	out := make(chan room.Event, 8)
	rm.Inbox() <- room.Join{ConnID: connID, Name: name, Outbox: out}
	select {
	case ev := <-out:
		require.Equal(t, room.EventJoined, ev.Type)
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("timed out joining room")
	}
}

func getRooms(t *testing.T, handler http.Handler, path string) roomsResponse {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body roomsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthz(t *testing.T) {
	_, handler := setup(t)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListRooms_Empty(t *testing.T) {
	_, handler := setup(t)
	body := getRooms(t, handler, "/rooms")
	assert.Empty(t, body.Rooms)
}

func TestListRooms_ReportsSeats(t *testing.T) {
	h, handler := setup(t)
	rm := ensureRoom(t, h, "ALPHA1")
	seatPlayer(t, rm, "c1", "alice")

	body := getRooms(t, handler, "/rooms")
	require.Len(t, body.Rooms, 1)
	got := body.Rooms[0]
	assert.Equal(t, "ALPHA1", got.Code)
	assert.Equal(t, 1, got.Seated)
	assert.Equal(t, 5, got.Seats)
	assert.False(t, got.Running)
}

func TestListWaitingRooms_LobbyWithFreeSeat(t *testing.T) {
	h, handler := setup(t)
	rm := ensureRoom(t, h, "WAIT01")
	seatPlayer(t, rm, "c1", "alice")

	body := getRooms(t, handler, "/rooms/waiting")
	require.Len(t, body.Rooms, 1)
	assert.Equal(t, "WAIT01", body.Rooms[0].Code)
}

func TestListWaitingRooms_ExcludesRunningWithNoEmptySeat(t *testing.T) {
	h, handler := setup(t)
	rm := ensureRoom(t, h, "BUSY01")
	seatPlayer(t, rm, "c1", "alice")
	seatPlayer(t, rm, "c2", "bob")
	rm.Inbox() <- room.StartGame{ConnID: "c1"}

	require.Eventually(t, func() bool {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms", nil))
		var body roomsResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			return false
		}
		return len(body.Rooms) == 1 && body.Rooms[0].Running
	}, time.Second, 20*time.Millisecond, "game should be running")

	body := getRooms(t, handler, "/rooms/waiting")
	assert.Empty(t, body.Rooms, "a full running game is not joinable")
}

func TestClearRooms(t *testing.T) {
	h, handler := setup(t)
	ensureRoom(t, h, "AAA")
	ensureRoom(t, h, "BBB")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rooms/clear", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Cleared int `json:"cleared"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Cleared)

	assert.Empty(t, getRooms(t, handler, "/rooms").Rooms)
}
