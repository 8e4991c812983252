package match

import (
	"encoding/json"
	"sync"
	"time"

	"gomoku/internal/config"
	"gomoku/internal/game"
	"gomoku/internal/history"
)

type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusPlaying  Status = "playing"
	StatusFinished Status = "finished"
)

type Player struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	IsBot bool       `json:"isBot"`
	Stone game.Stone `json:"stone"`
}

// Room is one game. Fields are guarded by mu; read them through Snapshot
// outside the manager.
type Room struct {
	mu sync.Mutex

	Code       string
	Mode       history.Mode
	Board      game.Board
	Players    []Player
	ToMove     game.Stone
	LastMove   *game.Coord
	Moves      []history.Move
	Winner     history.Outcome
	Status     Status
	CreatedAt  time.Time
	RoomConfig *config.RoomConfig
}

// View is an immutable copy of a room for serialization.
type View struct {
	Code      string          `json:"code"`
	Mode      history.Mode    `json:"mode"`
	Board     game.Board      `json:"board"`
	Players   []Player        `json:"players"`
	ToMove    game.Stone      `json:"toMove"`
	LastMove  *game.Coord     `json:"lastMove,omitempty"`
	Moves     []history.Move  `json:"moves"`
	Winner    history.Outcome `json:"winner,omitempty"`
	Draw      bool            `json:"draw"`
	Status    Status          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (r *Room) Snapshot() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Room) snapshotLocked() View {
	v := View{
		Code:      r.Code,
		Mode:      r.Mode,
		Board:     r.Board.Clone(),
		Players:   append([]Player(nil), r.Players...),
		ToMove:    r.ToMove,
		Moves:     append([]history.Move{}, r.Moves...),
		Winner:    r.Winner,
		Draw:      r.Winner == history.OutcomeDraw,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
	if r.LastMove != nil {
		lm := *r.LastMove
		v.LastMove = &lm
	}
	return v
}

func (r *Room) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Snapshot())
}

func (r *Room) playerLocked(id string) *Player {
	for i := range r.Players {
		if r.Players[i].ID == id {
			return &r.Players[i]
		}
	}
	return nil
}

func (r *Room) seatLocked(s game.Stone) *Player {
	for i := range r.Players {
		if r.Players[i].Stone == s {
			return &r.Players[i]
		}
	}
	return nil
}

// botStoneLocked returns the engine's color, or game.Empty if no bot sits here.
func (r *Room) botStoneLocked() game.Stone {
	for _, p := range r.Players {
		if p.IsBot {
			return p.Stone
		}
	}
	return game.Empty
}
