package game

// WinLength is the run that ends the game.
const WinLength = 5

// DetectWin reports whether the stone at placed completes five or more in a
// row on any axis. Each axis is walked at most WinLength-1 cells each way.
func DetectWin(b Board, placed Coord) (bool, error) {
	if !b.InBounds(placed.Row, placed.Col) {
		return false, ErrOutOfBounds
	}
	owner := b.Cells[placed.Row][placed.Col]
	if !owner.IsPlayer() {
		return false, ErrNoStone
	}

	for _, d := range Directions {
		count := 1
		for i := 1; i < WinLength; i++ {
			if b.CellState(placed.Row+d.DR*i, placed.Col+d.DC*i) != owner {
				break
			}
			count++
		}
		for i := 1; i < WinLength; i++ {
			if b.CellState(placed.Row-d.DR*i, placed.Col-d.DC*i) != owner {
				break
			}
			count++
		}
		if count >= WinLength {
			return true, nil
		}
	}
	return false, nil
}
