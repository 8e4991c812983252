package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gomoku/internal/game"
	"gomoku/internal/history"
	"gomoku/internal/match"
)

const hintCount = 3

var (
	boardColor  = tcell.NewRGBColor(0xd8, 0xb0, 0x6a)
	lineColor   = tcell.NewRGBColor(0x5a, 0x40, 0x20)
	cursorColor = tcell.NewRGBColor(0x6a, 0x9a, 0xd8)
	lastColor   = tcell.NewRGBColor(0xe8, 0xd0, 0x90)
	hintColor   = tcell.NewRGBColor(0x9a, 0xd8, 0x6a)
)

// boardView draws a room and turns key presses into manager calls. The
// engine always sits at white.
type boardView struct {
	Box    *tview.Box
	app    *tview.Application
	status *tview.TextView

	rm       *match.Manager
	room     *match.Room
	human    match.Player
	botDelay time.Duration

	sel     game.Coord
	hints   []game.ScoredMove
	message string
}

func newBoardView(app *tview.Application, status *tview.TextView, rm *match.Manager, botDelay time.Duration) *boardView {
	room := rm.CreateRoom(match.CreateOptions{PlayerName: "You", Mode: history.ModeAI, BotStone: game.White})
	v := room.Snapshot()

	bv := &boardView{
		Box:      tview.NewBox(),
		app:      app,
		status:   status,
		rm:       rm,
		room:     room,
		botDelay: botDelay,
		sel:      v.Board.Center(),
	}
	for _, p := range v.Players {
		if !p.IsBot {
			bv.human = p
		}
	}
	bv.Box.SetDrawFunc(bv.draw)
	bv.refreshStatus()
	return bv
}

// Broadcast redraws on manager events. It may be called from the event loop
// or from the bot goroutine, so the update is always queued.
func (bv *boardView) Broadcast(_ string, action string, _ interface{}) {
	go bv.app.QueueUpdateDraw(func() {
		if action != "config_updated" {
			bv.hints = nil
		}
		bv.refreshStatus()
	})
}

func (bv *boardView) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	switch ev.Key() {
	case tcell.KeyUp:
		bv.moveSelection(-1, 0)
	case tcell.KeyDown:
		bv.moveSelection(1, 0)
	case tcell.KeyLeft:
		bv.moveSelection(0, -1)
	case tcell.KeyRight:
		bv.moveSelection(0, 1)
	case tcell.KeyEnter:
		bv.play()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			bv.moveSelection(-1, 0)
		case 'j':
			bv.moveSelection(1, 0)
		case 'h':
			bv.showHints()
		case 'l':
			bv.moveSelection(0, 1)
		case ' ':
			bv.play()
		case 'u':
			bv.setMessage(bv.rm.Undo(bv.room, bv.human.ID))
		case 'r':
			bv.rm.Restart(bv.room)
			bv.setMessage(nil)
		case 'q':
			bv.app.Stop()
		default:
			return ev
		}
	default:
		return ev
	}
	bv.refreshStatus()
	return nil
}

func (bv *boardView) moveSelection(dr, dc int) {
	size := bv.room.Snapshot().Board.Size
	bv.sel.Row = max(0, min(size-1, bv.sel.Row+dr))
	bv.sel.Col = max(0, min(size-1, bv.sel.Col+dc))
}

func (bv *boardView) play() {
	err := bv.rm.ApplyMove(bv.room, bv.human.ID, bv.sel.Row, bv.sel.Col)
	bv.setMessage(err)
	if err == nil {
		go bv.botReply()
	}
}

func (bv *boardView) botReply() {
	bot, ok := bv.rm.DueBot(bv.room)
	if !ok {
		return
	}
	if bv.botDelay > 0 {
		time.Sleep(bv.botDelay)
	}
	if _, err := bv.rm.BotMove(bv.room, bot.ID); err != nil {
		bv.app.QueueUpdateDraw(func() { bv.setMessage(err) })
	}
}

func (bv *boardView) showHints() {
	hints, err := bv.rm.Hint(bv.room, hintCount)
	bv.setMessage(err)
	bv.hints = hints
	if len(hints) > 0 {
		bv.sel = hints[0].Coord
	}
}

func (bv *boardView) setMessage(err error) {
	bv.message = ""
	if err != nil {
		bv.message = err.Error()
	}
}

func (bv *boardView) refreshStatus() {
	v := bv.room.Snapshot()

	var turn string
	switch {
	case v.Draw:
		turn = "  Draw, the board is full\n"
	case v.Status == match.StatusFinished && v.Winner == history.OutcomeFor(bv.human.Stone):
		turn = "  ● You win!\n"
	case v.Status == match.StatusFinished:
		turn = "  ○ The engine wins\n"
	case v.ToMove == bv.human.Stone:
		turn = "  ● Your move (Black)\n"
	default:
		turn = "  ◌ Thinking...\n"
	}

	var hints string
	for i, h := range bv.hints {
		hints += fmt.Sprintf("  %d. %s  score %.0f\n", i+1, cellName(h.Coord, v.Board.Size), h.Score)
	}
	msg := ""
	if bv.message != "" {
		msg = "  ! " + bv.message + "\n"
	}

	bv.status.SetText(fmt.Sprintf("  Move %d\n%s%s%s\n  ↑↓←→/jkl move   ⏎ play\n  h hint   u undo   r restart   q quit",
		len(v.Moves), turn, hints, msg))
}

func (bv *boardView) isHint(c game.Coord) bool {
	for _, h := range bv.hints {
		if h.Coord == c {
			return true
		}
	}
	return false
}

func (bv *boardView) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	v := bv.room.Snapshot()
	size := v.Board.Size
	left := x + 4

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			at := game.Coord{Row: row, Col: col}
			stone := v.Board.At(at)

			bg := boardColor
			switch {
			case at == bv.sel:
				bg = cursorColor
			case v.LastMove != nil && at == *v.LastMove:
				bg = lastColor
			case bv.isHint(at):
				bg = hintColor
			}
			style := tcell.StyleDefault.Background(bg).Foreground(lineColor)

			r, right := gridRune(row, col, size), '─'
			if col == size-1 {
				right = ' '
			}
			switch stone {
			case game.Black:
				r, right = '●', ' '
				style = style.Foreground(tcell.ColorBlack)
			case game.White:
				r, right = '●', ' '
				style = style.Foreground(tcell.ColorWhite)
			}
			screen.SetContent(left+col*2, y+row, r, nil, style)
			screen.SetContent(left+col*2+1, y+row, right, nil, tcell.StyleDefault.Background(bg).Foreground(lineColor))
		}

		label := rowLabel(row, size)
		for i, ch := range label {
			screen.SetContent(x+1+i, y+row, ch, nil, tcell.StyleDefault)
		}
	}
	for col := 0; col < size; col++ {
		screen.SetContent(left+col*2, y+size, colLabel(col), nil, tcell.StyleDefault)
	}
	return x, y, size*2 + 4, size + 1
}

// gridRune picks the box-drawing character for an empty intersection.
func gridRune(row, col, size int) rune {
	top, bottom := row == 0, row == size-1
	leftEdge, rightEdge := col == 0, col == size-1
	switch {
	case top && leftEdge:
		return '┌'
	case top && rightEdge:
		return '┐'
	case bottom && leftEdge:
		return '└'
	case bottom && rightEdge:
		return '┘'
	case top:
		return '┬'
	case bottom:
		return '┴'
	case leftEdge:
		return '├'
	case rightEdge:
		return '┤'
	}
	c := size / 2
	if row == c && col == c {
		return '╋'
	}
	return '┼'
}

// Columns are letters from A; rows count up from the bottom edge, the same
// notation game records use.
func colLabel(col int) rune {
	return rune('A' + col)
}

func rowLabel(row, size int) string {
	return fmt.Sprintf("%2d", size-row)
}

func cellName(c game.Coord, size int) string {
	return fmt.Sprintf("%c%d", colLabel(c.Col), size-c.Row)
}
