package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"gomoku/internal/history"
)

var ErrNotFound = errors.New("record not found")

// SQLiteStore keeps finished-game records and the cumulative statistics.
// Both are stored as JSON text.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS records (
			id TEXT PRIMARY KEY,
			created_at INTEGER NOT NULL,
			data TEXT NOT NULL);
		CREATE TABLE IF NOT EXISTS stats (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			data TEXT NOT NULL);`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveRecord(rec history.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT OR REPLACE INTO records(id, created_at, data) VALUES (?, ?, ?)`,
		rec.ID, rec.Date.UnixNano(), string(data))
	if err != nil {
		return fmt.Errorf("save record %s: %w", rec.ID, err)
	}
	return nil
}

func (s *SQLiteStore) GetRecord(id string) (history.Record, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM records WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return history.Record{}, ErrNotFound
	}
	if err != nil {
		return history.Record{}, err
	}
	var rec history.Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return history.Record{}, err
	}
	return rec, nil
}

// ListRecords returns all records, newest first.
func (s *SQLiteStore) ListRecords() ([]history.Record, error) {
	rows, err := s.db.Query(`SELECT data FROM records ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []history.Record{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var rec history.Record
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) DeleteRecord(id string) error {
	res, err := s.db.Exec(`DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) ClearRecords() error {
	_, err := s.db.Exec(`DELETE FROM records`)
	return err
}

func (s *SQLiteStore) LoadStats() (history.Stats, error) {
	return loadStats(s.db)
}

func (s *SQLiteStore) SaveStats(st history.Stats) error {
	return saveStats(s.db, st)
}

// RecordResult folds one finished game into the stored statistics.
func (s *SQLiteStore) RecordResult(res history.Result) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	st, err := loadStats(tx)
	if err != nil {
		return err
	}
	st.RecordGame(res)
	if err := saveStats(tx, st); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) ResetStats() error {
	return saveStats(s.db, history.Stats{})
}

type querier interface {
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}

func loadStats(q querier) (history.Stats, error) {
	var st history.Stats
	var data string
	err := q.QueryRow(`SELECT data FROM stats WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return st, nil
	}
	if err != nil {
		return st, err
	}
	err = json.Unmarshal([]byte(data), &st)
	return st, err
}

func saveStats(q querier, st history.Stats) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	_, err = q.Exec(`INSERT INTO stats(id, data) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data`, string(data))
	return err
}
