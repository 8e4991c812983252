package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gomoku/internal/game"
)

type Mode string

const (
	ModePvP    Mode = "pvp"
	ModeAI     Mode = "ai"
	ModeOnline Mode = "online"
)

// Outcome is "black", "white" or "draw".
type Outcome string

const (
	OutcomeBlack Outcome = "black"
	OutcomeWhite Outcome = "white"
	OutcomeDraw  Outcome = "draw"
)

func OutcomeFor(s game.Stone) Outcome {
	if s == game.White {
		return OutcomeWhite
	}
	return OutcomeBlack
}

type Move struct {
	Row    int        `json:"row"`
	Col    int        `json:"col"`
	Player game.Stone `json:"player"`
}

type Record struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Mode        Mode      `json:"mode"`
	Winner      Outcome   `json:"winner"`
	BoardSize   int       `json:"boardSize"`
	Moves       []Move    `json:"moves"`
	BlackPlayer string    `json:"blackPlayer"`
	WhitePlayer string    `json:"whitePlayer"`
	MoveCount   int       `json:"moveCount"`
}

var ErrInvalidRecord = errors.New("invalid record format")

// NewRecord snapshots a finished game. botStone names the seat played by the
// engine in ai mode; pass game.Empty otherwise.
func NewRecord(moves []Move, mode Mode, winner Outcome, botStone game.Stone, boardSize int) Record {
	black, white := "Player", "Player"
	if mode == ModeAI {
		switch botStone {
		case game.Black:
			black = "AI"
		case game.White:
			white = "AI"
		}
	}
	return Record{
		ID:          uuid.NewString(),
		Date:        time.Now(),
		Mode:        mode,
		Winner:      winner,
		BoardSize:   boardSize,
		Moves:       append([]Move(nil), moves...),
		BlackPlayer: black,
		WhitePlayer: white,
		MoveCount:   len(moves),
	}
}

func (r Record) Export() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Import parses an exported record. It gets a fresh ID and date so that
// importing the same file twice keeps both copies.
func Import(data []byte) (Record, error) {
	// id and date are replaced below, so whatever shape they had is ignored.
	var raw struct {
		Record
		ID    json.RawMessage `json:"id"`
		Date  json.RawMessage `json:"date"`
		Moves json.RawMessage `json:"moves"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if len(raw.Moves) == 0 || raw.Moves[0] != '[' {
		return Record{}, fmt.Errorf("%w: moves must be a list", ErrInvalidRecord)
	}
	var moves []Move
	if err := json.Unmarshal(raw.Moves, &moves); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	rec := raw.Record
	if rec.BoardSize <= 0 {
		rec.BoardSize = game.DefaultBoardSize
	}
	if rec.BoardSize > game.MaxBoardSize {
		return Record{}, fmt.Errorf("%w: board size %d", ErrInvalidRecord, rec.BoardSize)
	}
	// every move must replay onto an empty board
	b := game.NewBoard(rec.BoardSize)
	for i, m := range moves {
		if err := b.Place(game.Coord{Row: m.Row, Col: m.Col}, m.Player); err != nil {
			return Record{}, fmt.Errorf("%w: move %d: %v", ErrInvalidRecord, i+1, err)
		}
	}
	rec.Moves = moves
	rec.MoveCount = len(moves)
	rec.ID = uuid.NewString()
	rec.Date = time.Now()
	return rec, nil
}

// FormatText renders the record for humans. Columns are letters from A,
// rows are numbered from the bottom edge.
func FormatText(r Record) string {
	var sb strings.Builder
	size := r.BoardSize
	if size <= 0 {
		size = game.DefaultBoardSize
	}

	mode := "player vs player"
	if r.Mode == ModeAI {
		mode = "player vs AI"
	} else if r.Mode == ModeOnline {
		mode = "online"
	}
	result := "draw"
	switch r.Winner {
	case OutcomeBlack:
		result = "black wins"
	case OutcomeWhite:
		result = "white wins"
	}

	fmt.Fprintf(&sb, "Gomoku record\n")
	fmt.Fprintf(&sb, "Date: %s\n", r.Date.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "Mode: %s\n", mode)
	fmt.Fprintf(&sb, "Black: %s\n", r.BlackPlayer)
	fmt.Fprintf(&sb, "White: %s\n", r.WhitePlayer)
	fmt.Fprintf(&sb, "Result: %s\n", result)
	fmt.Fprintf(&sb, "Moves: %d\n\n", r.MoveCount)

	for i, m := range r.Moves {
		side := "B"
		if m.Player == game.White {
			side = "W"
		}
		fmt.Fprintf(&sb, "%d. %s %c%d\n", i+1, side, 'A'+rune(m.Col), size-m.Row)
	}
	return sb.String()
}
