package history

import (
	"math"
	"time"
)

const (
	maxRecentGames = 20
	detailedRecent = 10
)

type GameSummary struct {
	Date   time.Time `json:"date"`
	Mode   Mode      `json:"mode"`
	Winner Outcome   `json:"winner"`
	Moves  int       `json:"moves"`
}

// Result is what a finished game contributes to the statistics.
// HumanColor is the human's outcome color in ai mode.
type Result struct {
	Mode       Mode
	Winner     Outcome
	Moves      int
	HumanColor Outcome
}

// Stats accumulates results across games. Wins, losses and streaks are from
// the human's side of ai games; black/white wins count the other modes.
type Stats struct {
	TotalGames    int           `json:"totalGames"`
	Wins          int           `json:"wins"`
	Losses        int           `json:"losses"`
	Draws         int           `json:"draws"`
	CurrentStreak int           `json:"currentStreak"`
	BestStreak    int           `json:"bestStreak"`
	BlackWins     int           `json:"blackWins"`
	WhiteWins     int           `json:"whiteWins"`
	TotalMoves    int           `json:"totalMoves"`
	FastestWin    *int          `json:"fastestWin"`
	Recent        []GameSummary `json:"recent"`
}

func (s *Stats) RecordGame(r Result) {
	s.TotalGames++
	s.TotalMoves += r.Moves

	switch {
	case r.Winner == OutcomeDraw:
		s.Draws++
		s.CurrentStreak = 0
	case r.Mode == ModeAI:
		if r.Winner == r.HumanColor {
			s.Wins++
			s.CurrentStreak++
			s.BestStreak = max(s.BestStreak, s.CurrentStreak)
			if s.FastestWin == nil || r.Moves < *s.FastestWin {
				moves := r.Moves
				s.FastestWin = &moves
			}
		} else {
			s.Losses++
			s.CurrentStreak = 0
		}
	case r.Winner == OutcomeBlack:
		s.BlackWins++
	default:
		s.WhiteWins++
	}

	s.Recent = append([]GameSummary{{
		Date:   time.Now(),
		Mode:   r.Mode,
		Winner: r.Winner,
		Moves:  r.Moves,
	}}, s.Recent...)
	if len(s.Recent) > maxRecentGames {
		s.Recent = s.Recent[:maxRecentGames]
	}
}

func (s *Stats) Reset() {
	*s = Stats{}
}

type Detailed struct {
	TotalGames    int           `json:"totalGames"`
	Wins          int           `json:"wins"`
	Losses        int           `json:"losses"`
	Draws         int           `json:"draws"`
	WinRate       int           `json:"winRate"`
	CurrentStreak int           `json:"currentStreak"`
	BestStreak    int           `json:"bestStreak"`
	BlackWins     int           `json:"blackWins"`
	WhiteWins     int           `json:"whiteWins"`
	AIGames       int           `json:"aiGames"`
	TotalMoves    int           `json:"totalMoves"`
	AvgMoves      int           `json:"avgMoves"`
	FastestWin    *int          `json:"fastestWin"`
	RecentGames   []GameSummary `json:"recentGames"`
}

// Detailed derives percentages (rounded) and averages.
func (s Stats) Detailed() Detailed {
	d := Detailed{
		TotalGames:    s.TotalGames,
		Wins:          s.Wins,
		Losses:        s.Losses,
		Draws:         s.Draws,
		CurrentStreak: s.CurrentStreak,
		BestStreak:    s.BestStreak,
		BlackWins:     s.BlackWins,
		WhiteWins:     s.WhiteWins,
		AIGames:       s.Wins + s.Losses,
		TotalMoves:    s.TotalMoves,
		FastestWin:    s.FastestWin,
		RecentGames:   s.Recent[:min(len(s.Recent), detailedRecent)],
	}
	if d.AIGames > 0 {
		d.WinRate = int(math.Round(float64(s.Wins) / float64(d.AIGames) * 100))
	}
	if s.TotalGames > 0 {
		d.AvgMoves = int(math.Round(float64(s.TotalMoves) / float64(s.TotalGames)))
	}
	return d
}
