package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gomoku/internal/config"
	"gomoku/internal/match"
)

type ConfigHandler struct {
	rm  *match.Manager
	cfg config.Config
}

func NewConfigHandler(rm *match.Manager, cfg config.Config) *ConfigHandler {
	return &ConfigHandler{rm: rm, cfg: cfg}
}

// GetDefaultWeightsHandler returns the server's default weights
// @Summary Get default heuristic weights
// @Description Returns the process-wide pattern score table
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config/weights/default [get]
func (h *ConfigHandler) GetDefaultWeightsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"weights":    h.cfg.DefaultWeights,
		"attackBias": h.cfg.AttackBias,
		"radius":     h.cfg.CandidateRadius,
	})
}

// GetRoomWeightsHandler returns the weights for a specific room
// @Summary Get room heuristic weights
// @Description Returns the score table the room's bot plays with
// @Tags Config
// @Produce json
// @Param roomCode query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /config/weights/room [get]
func (h *ConfigHandler) GetRoomWeightsHandler(c *gin.Context) {
	roomCode := c.Query("roomCode")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode is required"})
		return
	}

	rx, ok := h.rm.Get(roomCode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	weights := h.cfg.DefaultWeights
	isCustomized := false
	if rx.RoomConfig != nil {
		weights = rx.RoomConfig.GetWeights()
		isCustomized = rx.RoomConfig.IsCustomized()
	}

	c.JSON(http.StatusOK, gin.H{
		"roomCode":     roomCode,
		"weights":      weights,
		"isCustomized": isCustomized,
	})
}

// UpdateRoomWeightsHandler replaces or resets a room's weights
// @Summary Update room heuristic weights
// @Description Installs a validated score table for the room, or resets it to the defaults
// @Tags Config
// @Accept json
// @Produce json
// @Param request body UpdateRoomWeightsRequest true "Weights"
// @Success 200 {object} map[string]interface{}
// @Router /config/weights/room [post]
func (h *ConfigHandler) UpdateRoomWeightsHandler(c *gin.Context) {
	var req UpdateRoomWeightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode is required"})
		return
	}
	rx, ok := h.rm.Get(req.RoomCode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	if req.Reset {
		weights := h.cfg.DefaultWeights
		if rx.RoomConfig != nil {
			rx.RoomConfig.Reset()
			weights = rx.RoomConfig.GetWeights()
		}
		c.JSON(http.StatusOK, gin.H{"roomCode": req.RoomCode, "weights": weights, "isCustomized": false})
		return
	}
	if req.Weights == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weights are required"})
		return
	}
	if err := h.rm.SetRoomWeights(rx, *req.Weights); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"roomCode":     req.RoomCode,
		"weights":      *req.Weights,
		"isCustomized": true,
	})
}
