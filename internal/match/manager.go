package match

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gomoku/internal/config"
	"gomoku/internal/game"
	"gomoku/internal/history"
)

var (
	ErrNotYourTurn   = errors.New("not your turn or player invalid")
	ErrGameOver      = errors.New("game is over")
	ErrNotStarted    = errors.New("waiting for an opponent")
	ErrRoomFull      = errors.New("room is full")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNotBot        = errors.New("not bot's turn")
	ErrBotThinking   = errors.New("bot is thinking")
	ErrRoomNotFound  = errors.New("room not found")
)

type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
}

type Manager struct {
	store     Store
	cfg       config.Config
	hub       Broadcaster
	recorder  Recorder
	newEngine func(game.Settings) *game.Engine
}

// NewManager wires a manager. hub and rec may be nil.
func NewManager(s Store, cfg config.Config, hub Broadcaster, rec Recorder) *Manager {
	return &Manager{
		store:    s,
		cfg:      cfg,
		hub:      hub,
		recorder: rec,
		newEngine: func(st game.Settings) *game.Engine {
			return game.NewEngine(st, nil)
		},
	}
}

func (m *Manager) SetHub(hub Broadcaster) {
	m.hub = hub
}

// SetEngineFactory replaces how bot engines are built, e.g. to seed them.
func (m *Manager) SetEngineFactory(f func(game.Settings) *game.Engine) {
	m.newEngine = f
}

type CreateOptions struct {
	PlayerName string
	Mode       history.Mode
	// BotStone is the engine's color in ai mode. Defaults to white.
	BotStone  game.Stone
	BoardSize int
}

func (m *Manager) CreateRoom(opts CreateOptions) *Room {
	if opts.PlayerName == "" {
		opts.PlayerName = "Player"
	}
	if opts.Mode == "" {
		opts.Mode = history.ModeAI
	}
	size := opts.BoardSize
	if size <= 0 {
		size = m.cfg.BoardSize
	}

	code := m.uniqueCode()
	r := &Room{
		Code:       code,
		Mode:       opts.Mode,
		Board:      game.NewBoard(size),
		ToMove:     game.Black,
		Status:     StatusPlaying,
		CreatedAt:  time.Now(),
		RoomConfig: config.NewRoomConfig(code, m.cfg.DefaultWeights),
	}

	switch opts.Mode {
	case history.ModeAI:
		bot := opts.BotStone
		if !bot.IsPlayer() {
			bot = game.White
		}
		r.Players = []Player{
			{ID: uuid.NewString(), Name: opts.PlayerName, Stone: bot.Opponent()},
			{ID: "bot-" + uuid.NewString(), Name: "AI", IsBot: true, Stone: bot},
		}
	case history.ModeOnline:
		// host plays black and waits for a guest
		r.Players = []Player{{ID: uuid.NewString(), Name: opts.PlayerName, Stone: game.Black}}
		r.Status = StatusWaiting
	default:
		r.Mode = history.ModePvP
		r.Players = []Player{
			{ID: uuid.NewString(), Name: opts.PlayerName, Stone: game.Black},
			{ID: uuid.NewString(), Name: "Player 2", Stone: game.White},
		}
	}

	m.store.SaveRoom(r)
	log.Printf("room %s created (mode=%s, size=%d)", code, r.Mode, size)
	return r
}

// Join seats a guest as white in a waiting online room.
func (m *Manager) Join(code, name string) (*Room, Player, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, Player{}, ErrRoomNotFound
	}
	if name == "" {
		name = "Player"
	}

	r.mu.Lock()
	if r.Status != StatusWaiting || len(r.Players) >= 2 {
		r.mu.Unlock()
		return nil, Player{}, ErrRoomFull
	}
	p := Player{ID: uuid.NewString(), Name: name, Stone: game.White}
	r.Players = append(r.Players, p)
	r.Status = StatusPlaying
	view := r.snapshotLocked()
	r.mu.Unlock()

	m.store.SaveRoom(r)
	m.broadcast(code, "opponent_joined", gin.H{"player": p, "room": view})
	return r, p, nil
}

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

// applied is what a successful placement produces; persistence and
// broadcasting happen after the room lock is released.
type applied struct {
	move     history.Move
	view     View
	finished bool
	rec      history.Record
	res      history.Result
}

func (m *Manager) ApplyMove(r *Room, playerID string, row, col int) error {
	r.mu.Lock()
	out, err := m.applyLocked(r, playerID, game.Coord{Row: row, Col: col})
	r.mu.Unlock()
	if err != nil {
		log.Printf("move by %s at (%d,%d) in room %s rejected: %v", playerID, row, col, r.Code, err)
		return err
	}
	m.afterApply(r, playerID, out)
	return nil
}

// BotMove lets the engine play for botID and returns the chosen cell.
func (m *Manager) BotMove(r *Room, botID string) (game.Coord, error) {
	r.mu.Lock()
	if err := statusErr(r.Status); err != nil {
		r.mu.Unlock()
		return game.Coord{}, err
	}
	p := r.playerLocked(botID)
	if p == nil || !p.IsBot || p.Stone != r.ToMove {
		r.mu.Unlock()
		return game.Coord{}, ErrNotBot
	}

	mv, ok := m.engineLocked(r).SelectMove(r.Board, p.Stone, r.LastMove)
	if !ok {
		r.mu.Unlock()
		return game.Coord{}, game.ErrBoardFull
	}
	out, err := m.applyLocked(r, botID, mv)
	r.mu.Unlock()
	if err != nil {
		return game.Coord{}, fmt.Errorf("bot move: %w", err)
	}

	m.afterApply(r, botID, out)
	return mv, nil
}

// DueBot returns the bot seat when it is the bot's turn in a running game.
func (m *Manager) DueBot(r *Room) (Player, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Status != StatusPlaying {
		return Player{}, false
	}
	p := r.seatLocked(r.ToMove)
	if p == nil || !p.IsBot {
		return Player{}, false
	}
	return *p, true
}

// Undo takes back the last ply, or the last two in ai mode so the human is
// on move again. In ai mode it is refused while the bot still owes a reply.
func (m *Manager) Undo(r *Room, playerID string) error {
	r.mu.Lock()
	if r.Status == StatusFinished {
		r.mu.Unlock()
		return ErrGameOver
	}
	if p := r.playerLocked(playerID); p == nil || p.IsBot {
		r.mu.Unlock()
		return ErrNotYourTurn
	}
	if len(r.Moves) == 0 {
		r.mu.Unlock()
		return ErrNothingToUndo
	}

	steps := 1
	if r.Mode == history.ModeAI {
		if s := r.seatLocked(r.ToMove); s != nil && s.IsBot {
			r.mu.Unlock()
			return ErrBotThinking
		}
		// human on move with a single ply means the bot opened
		if len(r.Moves) < 2 {
			r.mu.Unlock()
			return ErrNothingToUndo
		}
		steps = 2
	}
	for i := 0; i < steps && len(r.Moves) > 0; i++ {
		last := r.Moves[len(r.Moves)-1]
		r.Moves = r.Moves[:len(r.Moves)-1]
		r.Board.Remove(game.Coord{Row: last.Row, Col: last.Col})
	}

	if n := len(r.Moves); n > 0 {
		prev := r.Moves[n-1]
		r.LastMove = &game.Coord{Row: prev.Row, Col: prev.Col}
		r.ToMove = prev.Player.Opponent()
	} else {
		r.LastMove = nil
		r.ToMove = game.Black
	}
	view := r.snapshotLocked()
	r.mu.Unlock()

	m.store.SaveRoom(r)
	m.broadcast(r.Code, "state", gin.H{"room": view})
	return nil
}

func (m *Manager) Restart(r *Room) {
	r.mu.Lock()
	r.Board = game.NewBoard(r.Board.Size)
	r.Moves = nil
	r.LastMove = nil
	r.ToMove = game.Black
	r.Winner = ""
	if len(r.Players) == 2 {
		r.Status = StatusPlaying
	} else {
		r.Status = StatusWaiting
	}
	view := r.snapshotLocked()
	r.mu.Unlock()

	m.store.SaveRoom(r)
	m.broadcast(r.Code, "state", gin.H{"room": view})
}

// Hint scores the candidates for the side to move, best first, keeping at
// most limit entries (all when limit <= 0).
func (m *Manager) Hint(r *Room, limit int) ([]game.ScoredMove, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := statusErr(r.Status); err != nil {
		return nil, err
	}
	scored := m.engineLocked(r).ScoreMoves(r.Board, r.ToMove, r.LastMove)
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

// SetRoomWeights installs a validated score table for the room's bot.
func (m *Manager) SetRoomWeights(r *Room, w game.Weights) error {
	if err := r.RoomConfig.SetWeights(w); err != nil {
		return err
	}
	m.broadcast(r.Code, "config_updated", gin.H{"weights": w})
	return nil
}

func (m *Manager) applyLocked(r *Room, playerID string, at game.Coord) (applied, error) {
	if err := statusErr(r.Status); err != nil {
		return applied{}, err
	}
	p := r.playerLocked(playerID)
	if p == nil || p.Stone != r.ToMove {
		return applied{}, ErrNotYourTurn
	}
	if err := r.Board.Place(at, p.Stone); err != nil {
		return applied{}, err
	}

	mv := history.Move{Row: at.Row, Col: at.Col, Player: p.Stone}
	r.Moves = append(r.Moves, mv)
	r.LastMove = &at

	out := applied{move: mv}
	won, err := game.DetectWin(r.Board, at)
	if err != nil {
		return applied{}, err
	}
	switch {
	case won:
		out.finished = true
		m.finishLocked(r, history.OutcomeFor(p.Stone), &out)
	case r.Board.IsFull():
		out.finished = true
		m.finishLocked(r, history.OutcomeDraw, &out)
	default:
		r.ToMove = r.ToMove.Opponent()
	}
	out.view = r.snapshotLocked()
	return out, nil
}

func (m *Manager) finishLocked(r *Room, winner history.Outcome, out *applied) {
	r.Status = StatusFinished
	r.Winner = winner

	bot := r.botStoneLocked()
	out.rec = history.NewRecord(r.Moves, r.Mode, winner, bot, r.Board.Size)
	out.res = history.Result{
		Mode:   r.Mode,
		Winner: winner,
		Moves:  len(r.Moves),
	}
	if bot.IsPlayer() {
		out.res.HumanColor = history.OutcomeFor(bot.Opponent())
	}
}

func (m *Manager) afterApply(r *Room, playerID string, out applied) {
	m.store.SaveRoom(r)

	if !out.finished {
		m.broadcast(r.Code, "move", gin.H{
			"playerId": playerID,
			"row":      out.move.Row,
			"col":      out.move.Col,
			"stone":    out.move.Player,
			"room":     out.view,
		})
		return
	}

	if m.recorder != nil {
		if err := m.recorder.SaveRecord(out.rec); err != nil {
			log.Printf("failed to save record for room %s: %v", r.Code, err)
		}
		if err := m.recorder.RecordResult(out.res); err != nil {
			log.Printf("failed to update stats for room %s: %v", r.Code, err)
		}
	}
	m.broadcast(r.Code, "game_over", gin.H{
		"winner":   out.view.Winner,
		"recordId": out.rec.ID,
		"room":     out.view,
	})
}

func (m *Manager) engineLocked(r *Room) *game.Engine {
	w := m.cfg.DefaultWeights
	if r.RoomConfig != nil && r.RoomConfig.IsCustomized() {
		w = r.RoomConfig.GetWeights()
	}
	return m.newEngine(m.cfg.EngineSettings(w))
}

func (m *Manager) broadcast(code, action string, data interface{}) {
	if m.hub != nil {
		m.hub.Broadcast(code, action, data)
	}
}

func statusErr(s Status) error {
	switch s {
	case StatusFinished:
		return ErrGameOver
	case StatusWaiting:
		return ErrNotStarted
	}
	return nil
}

func (m *Manager) uniqueCode() string {
	for {
		code := randCode(6)
		if _, taken := m.store.GetRoom(code); !taken {
			return code
		}
	}
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
