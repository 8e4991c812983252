package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gomoku/internal/game"
	"gomoku/internal/history"
	"gomoku/internal/match"
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, match.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, match.ErrRoomFull),
		errors.Is(err, match.ErrGameOver),
		errors.Is(err, match.ErrNotStarted),
		errors.Is(err, match.ErrBotThinking):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func lookupRoom(c *gin.Context, rm *match.Manager, code string) (*match.Room, bool) {
	rx, ok := rm.Get(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
	}
	return rx, ok
}

// openIfBotToMove lets a bot holding black make the first move.
func openIfBotToMove(rm *match.Manager, rx *match.Room) error {
	bot, due := rm.DueBot(rx)
	if !due {
		return nil
	}
	_, err := rm.BotMove(rx, bot.ID)
	return err
}

// @Summary Create new room
// @Description Create a room in pvp, ai or online mode
// @Tags Room
// @Accept json
// @Produce json
// @Param request body CreateRoomRequest true "Room options"
// @Success 200 {object} map[string]interface{}
// @Router /rooms [post]
func CreateRoomHandler(rm *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		mode := history.Mode(req.Mode)
		switch mode {
		case "", history.ModeAI, history.ModePvP, history.ModeOnline:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be pvp, ai or online"})
			return
		}
		botStone, err := parseStone(req.BotStone)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.BoardSize < 0 || req.BoardSize > game.MaxBoardSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("boardSize must be between 1 and %d", game.MaxBoardSize)})
			return
		}

		rx := rm.CreateRoom(match.CreateOptions{
			PlayerName: req.PlayerName,
			Mode:       mode,
			BotStone:   botStone,
			BoardSize:  req.BoardSize,
		})
		if err := openIfBotToMove(rm, rx); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		v := rx.Snapshot()
		var playerID string
		for _, p := range v.Players {
			if !p.IsBot {
				playerID = p.ID
				break
			}
		}
		c.JSON(http.StatusOK, gin.H{"roomCode": v.Code, "playerId": playerID, "room": v})
	}
}

// @Summary Join an online room
// @Description Seats a second human as white in a waiting online room
// @Tags Room
// @Accept json
// @Produce json
// @Param request body JoinRoomRequest true "Room code and player name"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/join [post]
func JoinRoomHandler(rm *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode required"})
			return
		}
		rx, p, err := rm.Join(req.RoomCode, req.PlayerName)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"playerId": p.ID, "player": p, "room": rx})
	}
}

// @Summary Get room state
// @Tags Room
// @Produce json
// @Param code path string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code} [get]
func GetRoomHandler(rm *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := lookupRoom(c, rm, c.Param("code"))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rx})
	}
}

// @Summary Player makes a move
// @Description Place a stone at (row, col) for the player on move
// @Tags Game
// @Accept json
// @Produce json
// @Param request body MoveRequest true "Move data"
// @Success 200 {object} map[string]interface{}
// @Router /move [post]
func MoveHandler(rm *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := lookupRoom(c, rm, req.RoomCode)
		if !ok {
			return
		}
		if err := rm.ApplyMove(rx, req.PlayerID, req.Row, req.Col); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		v := rx.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"ok":     true,
			"room":   v,
			"winner": v.Winner,
			"draw":   v.Draw,
		})
	}
}

// @Summary Let bot make its move
// @Description The engine picks the best move with the single-ply heuristic
// @Tags Game
// @Accept json
// @Produce json
// @Param request body MoveBotRequest true "Bot move"
// @Success 200 {object} map[string]interface{}
// @Router /move-bot [post]
func MoveBotHandler(rm *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveBotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := lookupRoom(c, rm, req.RoomCode)
		if !ok {
			return
		}
		botID := req.BotID
		if botID == "" {
			bot, due := rm.DueBot(rx)
			if !due {
				c.JSON(http.StatusBadRequest, gin.H{"error": match.ErrNotBot.Error()})
				return
			}
			botID = bot.ID
		}
		mv, err := rm.BotMove(rx, botID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		v := rx.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"row": mv.Row, "col": mv.Col,
			"lastState": gin.H{"winner": v.Winner, "draw": v.Draw},
			"room":      v,
		})
	}
}

// @Summary Take back the last move
// @Description Removes one ply, or two in ai mode so the human is on move again. Refused with 409 while the bot is on move.
// @Tags Game
// @Accept json
// @Produce json
// @Param request body UndoRequest true "Undo request"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /undo [post]
func UndoHandler(rm *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UndoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := lookupRoom(c, rm, req.RoomCode)
		if !ok {
			return
		}
		if err := rm.Undo(rx, req.PlayerID); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rx})
	}
}

// @Summary Restart the game
// @Tags Game
// @Accept json
// @Produce json
// @Param request body RestartRequest true "Room code"
// @Success 200 {object} map[string]interface{}
// @Router /restart [post]
func RestartHandler(rm *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RestartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode required"})
			return
		}
		rx, ok := lookupRoom(c, rm, req.RoomCode)
		if !ok {
			return
		}
		rm.Restart(rx)
		if err := openIfBotToMove(rm, rx); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rx})
	}
}

// @Summary Suggest moves
// @Description Scores the candidate cells for the side on move, best first
// @Tags Game
// @Produce json
// @Param roomCode query string true "Room Code"
// @Param limit query int false "Maximum number of suggestions (default 5)"
// @Success 200 {object} map[string]interface{}
// @Router /hint [get]
func HintHandler(rm *match.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := lookupRoom(c, rm, c.Query("roomCode"))
		if !ok {
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a number"})
			return
		}
		hints, err := rm.Hint(rx, limit)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		var best *game.ScoredMove
		if len(hints) > 0 {
			best = &hints[0]
		}
		c.JSON(http.StatusOK, gin.H{"hints": hints, "best": best})
	}
}
