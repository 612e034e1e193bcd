package server

import (
	"github.com/Garsondee/Fire-Sense/internal/engine"
)

// Client message types.
const (
	MsgStart    = "start"
	MsgClick    = "click"
	MsgSuppress = "suppress"
	MsgStop     = "stop"
)

// Server message types.
const (
	MsgSnapshot = "snapshot"
	MsgEvent    = "event"
	MsgWon      = "won"
	MsgLost     = "lost"
	MsgError    = "error"
)

// ClientMessage is a command sent over the play socket. FireID 0 on a
// suppress command targets the armed ticket.
type ClientMessage struct {
	Type   string `json:"type"`
	Level  int    `json:"level,omitempty"`
	FireID int    `json:"fire_id,omitempty"`
}

// ServerMessage is pushed to the client.
type ServerMessage struct {
	Type     string           `json:"type"`
	Snapshot *engine.Snapshot `json:"snapshot,omitempty"`
	Event    *engine.Event    `json:"event,omitempty"`
	Score    int              `json:"score,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// SessionInfo is one row of GET /sessions.
type SessionInfo struct {
	ID           string       `json:"id"`
	Level        engine.Level `json:"level"`
	State        engine.State `json:"state"`
	Score        int          `json:"score"`
	Extinguished int          `json:"extinguished"`
	Health       int          `json:"health"`
}
