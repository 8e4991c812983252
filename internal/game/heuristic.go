package game

import (
	"errors"
	"fmt"
)

// Weights maps (run length, open ends) to a heuristic score.
type Weights struct {
	Five         int `json:"five"`
	OpenFour     int `json:"openFour"`
	BlockedFour  int `json:"blockedFour"`
	OpenThree    int `json:"openThree"`
	BlockedThree int `json:"blockedThree"`
	OpenTwo      int `json:"openTwo"`
	BlockedTwo   int `json:"blockedTwo"`
	OpenOne      int `json:"openOne"`
}

func DefaultWeights() Weights {
	return Weights{
		Five:         100000,
		OpenFour:     10000,
		BlockedFour:  1000,
		OpenThree:    1000,
		BlockedThree: 100,
		OpenTwo:      100,
		BlockedTwo:   10,
		OpenOne:      10,
	}
}

var ErrInvalidWeights = errors.New("invalid weights")

// Validate checks that every weight is non-negative and that the table grows
// with run length and, for the same length, with open ends.
func (w Weights) Validate() error {
	vals := []struct {
		name string
		v    int
	}{
		{"five", w.Five}, {"openFour", w.OpenFour}, {"blockedFour", w.BlockedFour},
		{"openThree", w.OpenThree}, {"blockedThree", w.BlockedThree},
		{"openTwo", w.OpenTwo}, {"blockedTwo", w.BlockedTwo}, {"openOne", w.OpenOne},
	}
	for _, x := range vals {
		if x.v < 0 {
			return fmt.Errorf("%w: %s is negative", ErrInvalidWeights, x.name)
		}
	}

	order := [][2]int{
		{w.Five, w.OpenFour},
		{w.OpenFour, w.BlockedFour},
		{w.OpenFour, w.OpenThree},
		{w.BlockedFour, w.BlockedThree},
		{w.OpenThree, w.BlockedThree},
		{w.OpenThree, w.OpenTwo},
		{w.BlockedThree, w.BlockedTwo},
		{w.OpenTwo, w.BlockedTwo},
		{w.OpenTwo, w.OpenOne},
	}
	for _, p := range order {
		if p[0] < p[1] {
			return fmt.Errorf("%w: table is not monotone", ErrInvalidWeights)
		}
	}
	return nil
}

// Score looks up one segment. Runs of five or more saturate at Five; a run
// with both ends closed is worthless otherwise. A lone stone only counts
// when both ends are open.
func (w Weights) Score(s Segment) int {
	if s.Length >= 5 {
		return w.Five
	}
	if s.OpenEnds <= 0 {
		return 0
	}
	open := s.OpenEnds >= 2

	switch s.Length {
	case 4:
		if open {
			return w.OpenFour
		}
		return w.BlockedFour
	case 3:
		if open {
			return w.OpenThree
		}
		return w.BlockedThree
	case 2:
		if open {
			return w.OpenTwo
		}
		return w.BlockedTwo
	case 1:
		if open {
			return w.OpenOne
		}
	}
	return 0
}

func ScoreSegments(segs []Segment, w Weights) int {
	total := 0
	for _, s := range segs {
		total += w.Score(s)
	}
	return total
}

// scoreForPlayer sums the pattern score of all four axes through at, as if
// player had a stone there. The board is only read.
func scoreForPlayer(b Board, at Coord, player Stone, w Weights) int {
	total := 0
	for _, d := range Directions {
		line := ExtractLine(b, at, d, player)
		total += ScoreSegments(RecognizePatterns(line, player), w)
	}
	return total
}

// ScoreCell is scoreForPlayer for externally supplied coordinates.
func ScoreCell(b Board, at Coord, player Stone, w Weights) (int, error) {
	if !b.InBounds(at.Row, at.Col) {
		return 0, ErrOutOfBounds
	}
	if !player.IsPlayer() {
		return 0, ErrBadStone
	}
	return scoreForPlayer(b, at, player, w), nil
}
