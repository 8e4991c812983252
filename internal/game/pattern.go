package game

// Segment is one maximal run of a player's stones inside a window.
type Segment struct {
	Length   int `json:"length"`
	OpenEnds int `json:"openEnds"` // 0, 1 or 2
}

// RecognizePatterns splits w into runs of player. An end is open only when
// the neighboring cell inside the window is Empty; opponent stones, Boundary
// and the window edge all close it.
func RecognizePatterns(w Window, player Stone) []Segment {
	var out []Segment
	var cur Segment
	counting := false

	for i, s := range w {
		if s == player {
			if !counting {
				counting = true
				cur = Segment{Length: 1}
				if i > 0 && w[i-1] == Empty {
					cur.OpenEnds = 1
				}
			} else {
				cur.Length++
			}
			continue
		}
		if counting {
			if s == Empty {
				cur.OpenEnds++
			}
			out = append(out, cur)
			counting = false
		}
	}
	if counting {
		out = append(out, cur)
	}
	return out
}
