package types

import "github.com/perezful/hanabi-backend/internal/game"

type ClientMessage struct {
	Type   string     `json:"type"` // "StartGame" | "PlayCard" | "DiscardCard" | "GiveHint"
	CardID string     `json:"card_id,omitempty"`
	Hint   *game.Hint `json:"hint,omitempty"`
}

type ServerMessage struct {
	Type     string         `json:"type"` // "JoinedRoom" | "FullRoom" | "GameState" | "Error"
	PlayerID string         `json:"player_id,omitempty"`
	Version  int            `json:"version,omitempty"`
	State    *game.Snapshot `json:"state,omitempty"`
	Error    string         `json:"error,omitempty"`
}
