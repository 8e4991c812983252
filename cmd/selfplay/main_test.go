package main

import (
	"math/rand"
	"testing"

	"gomoku/internal/game"
	"gomoku/internal/history"
)

func newEngines(seed int64) (*game.Engine, *game.Engine) {
	s := game.DefaultSettings()
	return game.NewEngine(s, rand.New(rand.NewSource(seed))),
		game.NewEngine(s, rand.New(rand.NewSource(seed+1)))
}

func TestPlayGameEndsConsistently(t *testing.T) {
	for _, size := range []int{5, 9, 15} {
		black, white := newEngines(int64(size))
		winner, moves := playGame(size, black, white)
		if len(moves) == 0 {
			t.Fatalf("size %d: no moves played", size)
		}

		b := game.NewBoard(size)
		for i, m := range moves {
			want := game.Black
			if i%2 == 1 {
				want = game.White
			}
			if m.Player != want {
				t.Fatalf("size %d: move %d played by %v", size, i+1, m.Player)
			}
			if err := b.Place(game.Coord{Row: m.Row, Col: m.Col}, m.Player); err != nil {
				t.Fatalf("size %d: move %d: %v", size, i+1, err)
			}
		}

		last := moves[len(moves)-1]
		won, err := game.DetectWin(b, game.Coord{Row: last.Row, Col: last.Col})
		if err != nil {
			t.Fatal(err)
		}
		switch winner {
		case history.OutcomeDraw:
			if won || !b.IsFull() {
				t.Fatalf("size %d: draw declared on an undecided board", size)
			}
		default:
			if !won || history.OutcomeFor(last.Player) != winner {
				t.Fatalf("size %d: winner %s does not match final move", size, winner)
			}
		}
	}
}

func TestPlayGameIsReproducible(t *testing.T) {
	b1, wh1 := newEngines(42)
	w1, m1 := playGame(15, b1, wh1)
	b2, wh2 := newEngines(42)
	w2, m2 := playGame(15, b2, wh2)
	if w1 != w2 || len(m1) != len(m2) {
		t.Fatalf("same seeds gave %s/%d and %s/%d", w1, len(m1), w2, len(m2))
	}
	for i := range m1 {
		if m1[i] != m2[i] {
			t.Fatalf("games diverge at move %d", i+1)
		}
	}
}
