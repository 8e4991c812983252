package game

import (
	"errors"
	"testing"
)

func TestScoreTable(t *testing.T) {
	w := DefaultWeights()
	testCases := []struct {
		seg  Segment
		want int
	}{
		{Segment{7, 0}, 100000},
		{Segment{5, 0}, 100000},
		{Segment{5, 2}, 100000},
		{Segment{4, 2}, 10000},
		{Segment{4, 1}, 1000},
		{Segment{4, 0}, 0},
		{Segment{3, 2}, 1000},
		{Segment{3, 1}, 100},
		{Segment{3, 0}, 0},
		{Segment{2, 2}, 100},
		{Segment{2, 1}, 10},
		{Segment{1, 2}, 10},
		{Segment{1, 1}, 0},
		{Segment{1, 0}, 0},
	}
	for _, tc := range testCases {
		if got := w.Score(tc.seg); got != tc.want {
			t.Errorf("Score(%+v) = %d, want %d", tc.seg, got, tc.want)
		}
	}
}

func TestScoreMonotoneInRunLength(t *testing.T) {
	w := DefaultWeights()
	four := w.Score(Segment{4, 2})
	three := w.Score(Segment{3, 2})
	two := w.Score(Segment{2, 2})
	if !(four > three && three > two) {
		t.Fatalf("expected open4 > open3 > open2, got %d, %d, %d", four, three, two)
	}
}

func TestLoneOpenStoneEqualsBlockedPair(t *testing.T) {
	w := DefaultWeights()
	if w.Score(Segment{1, 2}) != w.Score(Segment{2, 1}) {
		t.Fatal("lone open stone and blocked pair should weigh the same")
	}
}

func TestWeightsValidate(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Fatalf("default weights invalid: %v", err)
	}

	neg := DefaultWeights()
	neg.OpenOne = -1
	if err := neg.Validate(); !errors.Is(err, ErrInvalidWeights) {
		t.Fatalf("expected ErrInvalidWeights for negative weight, got %v", err)
	}

	inverted := DefaultWeights()
	inverted.OpenThree = 50000
	if err := inverted.Validate(); !errors.Is(err, ErrInvalidWeights) {
		t.Fatalf("expected ErrInvalidWeights for non-monotone table, got %v", err)
	}
}

func TestScoreCell(t *testing.T) {
	b := NewBoard(15)
	place(t, b, Black, Coord{7, 5}, Coord{7, 6}, Coord{7, 7})

	// (7,8) makes an open four horizontally; the other three axes hold a lone open stone.
	got, err := ScoreCell(b, Coord{7, 8}, Black, DefaultWeights())
	if err != nil {
		t.Fatal(err)
	}
	if want := 10000 + 3*10; got != want {
		t.Fatalf("ScoreCell = %d, want %d", got, want)
	}

	if _, err := ScoreCell(b, Coord{15, 0}, Black, DefaultWeights()); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if _, err := ScoreCell(b, Coord{0, 0}, Empty, DefaultWeights()); !errors.Is(err, ErrBadStone) {
		t.Fatalf("expected ErrBadStone, got %v", err)
	}
}

func TestScoreSegmentsSums(t *testing.T) {
	segs := []Segment{{1, 2}, {2, 2}, {3, 1}}
	if got := ScoreSegments(segs, DefaultWeights()); got != 10+100+100 {
		t.Fatalf("ScoreSegments = %d", got)
	}
}
