package history

import "gomoku/internal/game"

// Replay steps through a record. The cursor counts how many moves are on
// the board.
type Replay struct {
	rec    Record
	cursor int
}

func NewReplay(r Record) *Replay {
	return &Replay{rec: r}
}

// Next returns the move that advances the cursor, or false at the end.
func (p *Replay) Next() (Move, bool) {
	if p.cursor >= len(p.rec.Moves) {
		return Move{}, false
	}
	m := p.rec.Moves[p.cursor]
	p.cursor++
	return m, true
}

// Prev steps back and returns the move taken off the board.
func (p *Replay) Prev() (Move, bool) {
	if p.cursor <= 0 {
		return Move{}, false
	}
	p.cursor--
	return p.rec.Moves[p.cursor], true
}

// Jump moves the cursor, clamped to [0, len(moves)].
func (p *Replay) Jump(i int) {
	p.cursor = max(0, min(i, len(p.rec.Moves)))
}

func (p *Replay) Progress() (current, total int) {
	return p.cursor, len(p.rec.Moves)
}

func (p *Replay) AtEnd() bool {
	return p.cursor >= len(p.rec.Moves)
}

// Board rebuilds the position at the cursor.
func (p *Replay) Board() (game.Board, error) {
	size := p.rec.BoardSize
	if size <= 0 {
		size = game.DefaultBoardSize
	}
	b := game.NewBoard(size)
	for _, m := range p.rec.Moves[:p.cursor] {
		if err := b.Place(game.Coord{Row: m.Row, Col: m.Col}, m.Player); err != nil {
			return b, err
		}
	}
	return b, nil
}
