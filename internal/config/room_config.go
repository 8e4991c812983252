package config

import (
	"sync"

	"gomoku/internal/game"
)

// RoomConfig holds per-room overrides of the score table.
type RoomConfig struct {
	RoomCode string `json:"roomCode"`

	mu       sync.RWMutex
	weights  *game.Weights
	defaults game.Weights
}

// NewRoomConfig starts a room on the given defaults, which Reset returns to.
func NewRoomConfig(code string, defaults game.Weights) *RoomConfig {
	return &RoomConfig{RoomCode: code, defaults: defaults}
}

// GetWeights returns the room's weights, falling back to its defaults.
func (rc *RoomConfig) GetWeights() game.Weights {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	if rc.weights != nil {
		return *rc.weights
	}
	return rc.defaults
}

func (rc *RoomConfig) IsCustomized() bool {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return rc.weights != nil
}

// SetWeights validates and stores an override.
func (rc *RoomConfig) SetWeights(w game.Weights) error {
	if err := w.Validate(); err != nil {
		return err
	}
	rc.mu.Lock()
	rc.weights = &w
	rc.mu.Unlock()
	return nil
}

// Reset drops the override.
func (rc *RoomConfig) Reset() {
	rc.mu.Lock()
	rc.weights = nil
	rc.mu.Unlock()
}
