package config

import (
	"os"
	"strconv"
	"sync"
	"time"

	"gomoku/internal/game"
)

type Config struct {
	HTTPAddr  string
	DBPath    string
	BoardSize int

	DefaultWeights  game.Weights
	AttackBias      float64
	CandidateRadius int
	ScoreWorkers    int

	// BotDelay is the pause before the hub sends a bot reply. It is
	// presentation only and never reaches the engine.
	BotDelay time.Duration
}

// EngineSettings builds engine settings using w as the score table.
func (c Config) EngineSettings(w game.Weights) game.Settings {
	return game.Settings{
		Weights:    w,
		AttackBias: c.AttackBias,
		Radius:     c.CandidateRadius,
		Workers:    c.ScoreWorkers,
	}
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() Config {
	d := game.DefaultWeights()
	return Config{
		HTTPAddr:  getenvString("HTTP_ADDR", ":8080"),
		DBPath:    getenvString("DB_PATH", "gomoku.db"),
		BoardSize: getenvInt("BOARD_SIZE", game.DefaultBoardSize),
		DefaultWeights: game.Weights{
			Five:         getenvInt("W_FIVE", d.Five),
			OpenFour:     getenvInt("W_OPEN_FOUR", d.OpenFour),
			BlockedFour:  getenvInt("W_BLOCKED_FOUR", d.BlockedFour),
			OpenThree:    getenvInt("W_OPEN_THREE", d.OpenThree),
			BlockedThree: getenvInt("W_BLOCKED_THREE", d.BlockedThree),
			OpenTwo:      getenvInt("W_OPEN_TWO", d.OpenTwo),
			BlockedTwo:   getenvInt("W_BLOCKED_TWO", d.BlockedTwo),
			OpenOne:      getenvInt("W_OPEN_ONE", d.OpenOne),
		},
		AttackBias:      getenvFloat("ATTACK_BIAS", 1.1),
		CandidateRadius: getenvInt("CANDIDATE_RADIUS", game.DefaultCandidateRadius),
		ScoreWorkers:    getenvInt("SCORE_WORKERS", 1),
		BotDelay:        time.Duration(getenvInt("BOT_DELAY_MS", 0)) * time.Millisecond,
	}
}

var (
	once   sync.Once
	loaded *Config
)

// Get returns the process-wide configuration, loading it on first use.
func Get() *Config {
	once.Do(func() {
		c := Load()
		loaded = &c
	})
	return loaded
}
