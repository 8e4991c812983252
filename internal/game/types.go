package game

import "errors"

// Stone is the state of a single grid cell as seen by the evaluator.
type Stone int

const (
	Empty Stone = iota
	Black
	White
	// Boundary only ever appears inside a Window, for positions past the grid edge.
	Boundary
)

var (
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	ErrOccupied    = errors.New("cell already occupied")
	ErrNoStone     = errors.New("no stone at coordinate")
	ErrBadStone    = errors.New("stone must be black or white")
	ErrBoardFull   = errors.New("board is full")
)

// Opponent returns the other player's color. Empty and Boundary map to themselves.
func (s Stone) Opponent() Stone {
	switch s {
	case Black:
		return White
	case White:
		return Black
	default:
		return s
	}
}

// IsPlayer reports whether s is a real player color.
func (s Stone) IsPlayer() bool {
	return s == Black || s == White
}

func (s Stone) String() string {
	switch s {
	case Black:
		return "black"
	case White:
		return "white"
	case Boundary:
		return "boundary"
	default:
		return "empty"
	}
}

// Coord is a zero-based (row, col) pair.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Direction is one of the four scanning axes. The opposite vector is
// covered by walking both signs from the origin cell.
type Direction struct {
	DR, DC int
}

// Directions lists the four axes: horizontal, vertical, diagonal, anti-diagonal.
var Directions = [4]Direction{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

type Board struct {
	Size  int       `json:"size"`
	Cells [][]Stone `json:"cells"` // Cells[row][col]
}

// DefaultBoardSize is the standard 15x15 grid.
const DefaultBoardSize = 15

const MaxBoardSize = 25

func NewBoard(size int) Board {
	if size <= 0 {
		size = DefaultBoardSize
	}

	c := make([][]Stone, size)
	for i := range c {
		c[i] = make([]Stone, size)
	}

	return Board{
		Size:  size,
		Cells: c,
	}
}
