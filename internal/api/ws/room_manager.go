package ws

import (
	"gomoku/internal/game"
	"gomoku/internal/match"
)

type RoomManager interface {
	Get(roomCode string) (*match.Room, bool)
	ApplyMove(room *match.Room, playerID string, row, col int) error
	BotMove(room *match.Room, botID string) (game.Coord, error)
	DueBot(room *match.Room) (match.Player, bool)
}
