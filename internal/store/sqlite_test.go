package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"gomoku/internal/game"
	"gomoku/internal/history"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	moves := []history.Move{{Row: 7, Col: 7, Player: game.Black}}

	older := history.NewRecord(moves, history.ModePvP, history.OutcomeBlack, game.Empty, 15)
	older.Date = time.Now().Add(-time.Hour)
	newer := history.NewRecord(moves, history.ModeAI, history.OutcomeWhite, game.White, 15)

	for _, r := range []history.Record{older, newer} {
		if err := s.SaveRecord(r); err != nil {
			t.Fatal(err)
		}
	}

	list, err := s.ListRecords()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].ID != newer.ID {
		t.Fatalf("expected newest first, got %+v", list)
	}

	got, err := s.GetRecord(older.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Winner != history.OutcomeBlack || len(got.Moves) != 1 {
		t.Fatalf("unexpected record %+v", got)
	}

	if err := s.DeleteRecord(older.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetRecord(older.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.DeleteRecord(older.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	if err := s.ClearRecords(); err != nil {
		t.Fatal(err)
	}
	if list, _ := s.ListRecords(); len(list) != 0 {
		t.Fatalf("expected no records, got %d", len(list))
	}
}

func TestStatsPersistence(t *testing.T) {
	s := openTestStore(t)

	st, err := s.LoadStats()
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalGames != 0 {
		t.Fatal("fresh store should have empty stats")
	}

	res := history.Result{Mode: history.ModeAI, Winner: history.OutcomeBlack, Moves: 21, HumanColor: history.OutcomeBlack}
	if err := s.RecordResult(res); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordResult(res); err != nil {
		t.Fatal(err)
	}

	st, err = s.LoadStats()
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalGames != 2 || st.Wins != 2 || st.BestStreak != 2 {
		t.Fatalf("unexpected stats %+v", st)
	}

	if err := s.ResetStats(); err != nil {
		t.Fatal(err)
	}
	if st, _ = s.LoadStats(); st.TotalGames != 0 {
		t.Fatal("reset did not clear stats")
	}
}
