package http

import (
	"errors"
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"

	"gomoku/internal/config"
	"gomoku/internal/game"
)

// EngineHandler exposes the move selector and win detector without a room.
type EngineHandler struct {
	cfg config.Config
}

func NewEngineHandler(cfg config.Config) *EngineHandler {
	return &EngineHandler{cfg: cfg}
}

// SelectMoveHandler picks a move for an arbitrary position
// @Summary Select a move
// @Description Runs the heuristic move selector on the given board. found is false when the board is full.
// @Tags Engine
// @Accept json
// @Produce json
// @Param request body SelectMoveRequest true "Position"
// @Success 200 {object} map[string]interface{}
// @Router /engine/select-move [post]
func (h *EngineHandler) SelectMoveHandler(c *gin.Context) {
	var req SelectMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := checkBoard(req.Board); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Player.IsPlayer() {
		c.JSON(http.StatusBadRequest, gin.H{"error": game.ErrBadStone.Error()})
		return
	}

	w := h.cfg.DefaultWeights
	if req.Weights != nil {
		if err := req.Weights.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		w = *req.Weights
	}
	var rng *rand.Rand
	if req.Seed != nil {
		rng = rand.New(rand.NewSource(*req.Seed))
	}

	eng := game.NewEngine(h.cfg.EngineSettings(w), rng)
	mv, ok := eng.SelectMove(req.Board, req.Player, req.LastMove)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "move": mv})
}

// DetectWinHandler checks whether the stone at placed completes five
// @Summary Detect a win
// @Description Reports whether the stone at placed is part of five or more in a row
// @Tags Engine
// @Accept json
// @Produce json
// @Param request body DetectWinRequest true "Position and last placed stone"
// @Success 200 {object} map[string]interface{}
// @Router /engine/detect-win [post]
func (h *EngineHandler) DetectWinHandler(c *gin.Context) {
	var req DetectWinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := checkBoard(req.Board); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	won, err := game.DetectWin(req.Board, req.Placed)
	switch {
	case errors.Is(err, game.ErrOutOfBounds), errors.Is(err, game.ErrNoStone):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"win":   won,
		"stone": req.Board.At(req.Placed),
	})
}
