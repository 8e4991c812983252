package http

import (
	"fmt"

	"gomoku/internal/game"
)

// CreateRoomRequest represents the payload for /rooms.
type CreateRoomRequest struct {
	PlayerName string `json:"playerName"`
	Mode       string `json:"mode" example:"ai"`
	// BotStone is "black" or "white"; the engine plays white when empty.
	BotStone  string `json:"botStone"`
	BoardSize int    `json:"boardSize"`
}

// JoinRoomRequest represents the payload for joining an online room.
type JoinRoomRequest struct {
	RoomCode   string `json:"roomCode" binding:"required"`
	PlayerName string `json:"playerName"`
}

// MoveRequest represents a player move.
type MoveRequest struct {
	RoomCode string `json:"roomCode" binding:"required"`
	PlayerID string `json:"playerId" binding:"required"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
}

// MoveBotRequest asks the engine to play. BotID defaults to the seat on move.
type MoveBotRequest struct {
	RoomCode string `json:"roomCode" binding:"required"`
	BotID    string `json:"botId"`
}

type UndoRequest struct {
	RoomCode string `json:"roomCode" binding:"required"`
	PlayerID string `json:"playerId" binding:"required"`
}

type RestartRequest struct {
	RoomCode string `json:"roomCode" binding:"required"`
}

// SelectMoveRequest is a stateless engine query.
type SelectMoveRequest struct {
	Board    game.Board    `json:"board"`
	Player   game.Stone    `json:"player" example:"1"`
	LastMove *game.Coord   `json:"lastMove"`
	Weights  *game.Weights `json:"weights"`
	// Seed makes tie-breaking reproducible.
	Seed *int64 `json:"seed"`
}

type DetectWinRequest struct {
	Board  game.Board `json:"board"`
	Placed game.Coord `json:"placed"`
}

type UpdateRoomWeightsRequest struct {
	RoomCode string        `json:"roomCode" binding:"required"`
	Weights  *game.Weights `json:"weights"`
	// Reset drops the room's table and falls back to the defaults.
	Reset bool `json:"reset"`
}

func parseStone(s string) (game.Stone, error) {
	switch s {
	case "":
		return game.Empty, nil
	case "black":
		return game.Black, nil
	case "white":
		return game.White, nil
	}
	return game.Empty, fmt.Errorf("%w: %q", game.ErrBadStone, s)
}

// checkBoard rejects boards whose shape disagrees with Size or that hold
// anything other than empty, black and white cells.
func checkBoard(b game.Board) error {
	if b.Size <= 0 || len(b.Cells) != b.Size {
		return fmt.Errorf("board must have %d rows", b.Size)
	}
	for r, row := range b.Cells {
		if len(row) != b.Size {
			return fmt.Errorf("board row %d has %d cells, want %d", r, len(row), b.Size)
		}
		for _, s := range row {
			if s != game.Empty && !s.IsPlayer() {
				return fmt.Errorf("board row %d: %w", r, game.ErrBadStone)
			}
		}
	}
	return nil
}
