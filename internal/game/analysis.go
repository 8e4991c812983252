package game

// DefaultCandidateRadius is the Chebyshev distance from an existing stone
// within which empty cells are worth scoring.
const DefaultCandidateRadius = 2

// GenerateCandidates returns every empty cell within radius of any stone,
// without duplicates. The neighborhood of lastMove (if any) is listed first;
// the rest follow in row-major order. An empty board yields nil.
func GenerateCandidates(b Board, lastMove *Coord, radius int) []Coord {
	if radius <= 0 {
		radius = DefaultCandidateRadius
	}

	seen := make([][]bool, b.Size)
	for i := range seen {
		seen[i] = make([]bool, b.Size)
	}

	var out []Coord
	addAround := func(row, col int) {
		for dr := -radius; dr <= radius; dr++ {
			for dc := -radius; dc <= radius; dc++ {
				r, c := row+dr, col+dc
				if !b.InBounds(r, c) || seen[r][c] || b.Cells[r][c] != Empty {
					continue
				}
				seen[r][c] = true
				out = append(out, Coord{Row: r, Col: c})
			}
		}
	}

	if lastMove != nil && b.InBounds(lastMove.Row, lastMove.Col) && b.Cells[lastMove.Row][lastMove.Col] != Empty {
		addAround(lastMove.Row, lastMove.Col)
	}

	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			if b.Cells[r][c] != Empty {
				addAround(r, c)
			}
		}
	}

	return out
}
