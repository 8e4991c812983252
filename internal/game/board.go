package game

import (
	"fmt"
	"strings"
)

func (b Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Size && col >= 0 && col < b.Size
}

// CellState returns the stone at (row, col), or Boundary when the
// coordinate is outside the grid.
func (b Board) CellState(row, col int) Stone {
	if !b.InBounds(row, col) {
		return Boundary
	}
	return b.Cells[row][col]
}

func (b Board) At(c Coord) Stone {
	return b.CellState(c.Row, c.Col)
}

// Place puts a stone on an empty cell.
func (b Board) Place(c Coord, s Stone) error {
	if !b.InBounds(c.Row, c.Col) {
		return fmt.Errorf("place (%d,%d): %w", c.Row, c.Col, ErrOutOfBounds)
	}
	if !s.IsPlayer() {
		return ErrBadStone
	}
	if b.Cells[c.Row][c.Col] != Empty {
		return fmt.Errorf("place (%d,%d): %w", c.Row, c.Col, ErrOccupied)
	}
	b.Cells[c.Row][c.Col] = s
	return nil
}

func (b Board) Remove(c Coord) {
	if b.InBounds(c.Row, c.Col) {
		b.Cells[c.Row][c.Col] = Empty
	}
}

func (b Board) Clone() Board {
	out := NewBoard(b.Size)
	for r := range b.Cells {
		copy(out.Cells[r], b.Cells[r])
	}
	return out
}

func (b Board) StoneCount() int {
	n := 0
	for _, row := range b.Cells {
		for _, s := range row {
			if s != Empty {
				n++
			}
		}
	}
	return n
}

func (b Board) IsFull() bool {
	return b.StoneCount() == b.Size*b.Size
}

// Center is the first move on an empty board. For even sizes it is the
// lower-right of the four middle cells.
func (b Board) Center() Coord {
	return Coord{Row: b.Size / 2, Col: b.Size / 2}
}

// ParseBoard builds a board from rows of '.', 'X' (black) and 'O' (white).
func ParseBoard(rows ...string) (Board, error) {
	b := NewBoard(len(rows))
	for r, line := range rows {
		if len(line) != len(rows) {
			return Board{}, fmt.Errorf("row %d has %d cells, want %d", r, len(line), len(rows))
		}
		for c, ch := range line {
			switch ch {
			case '.':
			case 'X', 'x':
				b.Cells[r][c] = Black
			case 'O', 'o':
				b.Cells[r][c] = White
			default:
				return Board{}, fmt.Errorf("row %d col %d: unknown cell %q", r, c, ch)
			}
		}
	}
	return b, nil
}

func (b Board) String() string {
	var sb strings.Builder
	for _, row := range b.Cells {
		for _, s := range row {
			switch s {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
