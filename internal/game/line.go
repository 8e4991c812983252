package game

// WindowReach is how many cells on each side of the candidate a window covers.
// Four is enough to see a five anchored anywhere through the candidate and
// whether a four's far end is open.
const WindowReach = 4

const WindowSize = 2*WindowReach + 1

// Window is the slice of one axis centered on a candidate cell.
type Window [WindowSize]Stone

// ExtractLine builds the window through at along d, with the center forced
// to player. Positions past the grid edge hold Boundary.
func ExtractLine(b Board, at Coord, d Direction, player Stone) Window {
	var w Window
	for i := -WindowReach; i <= WindowReach; i++ {
		w[i+WindowReach] = b.CellState(at.Row+d.DR*i, at.Col+d.DC*i)
	}
	w[WindowReach] = player
	return w
}
