package game

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Settings tunes the move selector.
type Settings struct {
	Weights Weights `json:"weights"`
	// AttackBias multiplies the attack score before it is compared with the
	// defense score at the same cell.
	AttackBias float64 `json:"attackBias"`
	Radius     int     `json:"radius"`
	// Workers > 1 scores candidates concurrently.
	Workers int `json:"workers"`
}

func DefaultSettings() Settings {
	return Settings{
		Weights:    DefaultWeights(),
		AttackBias: 1.1,
		Radius:     DefaultCandidateRadius,
		Workers:    1,
	}
}

// ScoredMove is a candidate together with both perspectives of its score.
type ScoredMove struct {
	Coord
	Attack  int     `json:"attack"`
	Defense int     `json:"defense"`
	Score   float64 `json:"score"`
}

// Engine picks moves with a single-ply static evaluation. It holds no board
// state; the only mutable field is the tie-break random source.
type Engine struct {
	settings Settings

	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine returns an engine using rng for tie-breaks. A nil rng is seeded
// from the clock.
func NewEngine(s Settings, rng *rand.Rand) *Engine {
	if s.AttackBias <= 0 {
		s.AttackBias = DefaultSettings().AttackBias
	}
	if s.Radius <= 0 {
		s.Radius = DefaultCandidateRadius
	}
	if s.Workers <= 0 {
		s.Workers = 1
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{settings: s, rng: rng}
}

func (e *Engine) Settings() Settings {
	return e.settings
}

// SelectMove returns the best cell for player. On an empty board it returns
// the center without scoring. ok is false only when the board is full.
func (e *Engine) SelectMove(b Board, player Stone, lastMove *Coord) (mv Coord, ok bool) {
	cands := GenerateCandidates(b, lastMove, e.settings.Radius)
	if len(cands) == 0 {
		if b.StoneCount() == 0 {
			return b.Center(), true
		}
		return mv, false
	}

	scored := e.scoreCandidates(b, player, cands)

	var best []Coord
	bestScore := -1.0
	for _, s := range scored {
		switch {
		case s.Score > bestScore:
			bestScore = s.Score
			best = append(best[:0], s.Coord)
		case s.Score == bestScore:
			best = append(best, s.Coord)
		}
	}

	e.mu.Lock()
	idx := e.rng.Intn(len(best))
	e.mu.Unlock()

	return best[idx], true
}

// ScoreMoves scores every candidate for player, best first. Equal scores keep
// candidate order.
func (e *Engine) ScoreMoves(b Board, player Stone, lastMove *Coord) []ScoredMove {
	cands := GenerateCandidates(b, lastMove, e.settings.Radius)
	scored := e.scoreCandidates(b, player, cands)
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// scoreCandidates returns one entry per candidate, in candidate order,
// whether scored sequentially or in parallel.
func (e *Engine) scoreCandidates(b Board, player Stone, cands []Coord) []ScoredMove {
	out := make([]ScoredMove, len(cands))
	if e.settings.Workers <= 1 || len(cands) < 2 {
		for i, c := range cands {
			out[i] = e.scoreMove(b, player, c)
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(e.settings.Workers)
	for i, c := range cands {
		g.Go(func() error {
			out[i] = e.scoreMove(b, player, c)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (e *Engine) scoreMove(b Board, player Stone, at Coord) ScoredMove {
	w := e.settings.Weights
	attack := scoreForPlayer(b, at, player, w)
	defense := scoreForPlayer(b, at, player.Opponent(), w)
	return ScoredMove{
		Coord:   at,
		Attack:  attack,
		Defense: defense,
		Score:   max(float64(attack)*e.settings.AttackBias, float64(defense)),
	}
}
