package http

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"gomoku/internal/api/ws"
	"gomoku/internal/config"
	"gomoku/internal/game"
	"gomoku/internal/history"
	"gomoku/internal/match"
	"gomoku/internal/store"
)

func newTestServer(t *testing.T) (*gin.Engine, *match.Manager) {
	t.Helper()
	return newTestServerWithConfig(t, config.Load())
}

func newTestServerWithConfig(t *testing.T, cfg config.Config) (*gin.Engine, *match.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	rm := match.NewManager(store.NewMemoryStore(), cfg, nil, db)
	rm.SetEngineFactory(func(s game.Settings) *game.Engine {
		return game.NewEngine(s, rand.New(rand.NewSource(1)))
	})
	hub := ws.NewHub(rm, 0)
	rm.SetHub(hub)
	return NewRouter(rm, db, hub, cfg), rm
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.([]byte); ok {
			buf.Write(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

type createResp struct {
	RoomCode string     `json:"roomCode"`
	PlayerID string     `json:"playerId"`
	Room     match.View `json:"room"`
}

func seatID(v match.View, s game.Stone) string {
	for _, p := range v.Players {
		if p.Stone == s {
			return p.ID
		}
	}
	return ""
}

func TestPvPGameIsRecorded(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/rooms", gin.H{"playerName": "Ana", "mode": "pvp"})
	if w.Code != http.StatusOK {
		t.Fatalf("create: %d %s", w.Code, w.Body)
	}
	var cr createResp
	decode(t, w, &cr)
	black, white := seatID(cr.Room, game.Black), seatID(cr.Room, game.White)

	move := func(id string, row, col int) *httptest.ResponseRecorder {
		return doJSON(t, r, http.MethodPost, "/move", gin.H{"roomCode": cr.RoomCode, "playerId": id, "row": row, "col": col})
	}
	for col := 0; col < 4; col++ {
		if w := move(black, 0, col); w.Code != http.StatusOK {
			t.Fatalf("black move: %d %s", w.Code, w.Body)
		}
		if w := move(white, 1, col); w.Code != http.StatusOK {
			t.Fatalf("white move: %d %s", w.Code, w.Body)
		}
	}
	if w := move(white, 5, 5); w.Code != http.StatusBadRequest {
		t.Fatalf("out of turn move: %d", w.Code)
	}
	w = move(black, 0, 4)
	var mr struct {
		Winner history.Outcome `json:"winner"`
	}
	decode(t, w, &mr)
	if mr.Winner != history.OutcomeBlack {
		t.Fatalf("winner = %q, want black", mr.Winner)
	}
	if w := move(white, 6, 6); w.Code != http.StatusConflict {
		t.Fatalf("move after game over: %d", w.Code)
	}

	var list struct {
		Records []history.Record `json:"records"`
		Count   int              `json:"count"`
	}
	decode(t, doJSON(t, r, http.MethodGet, "/records", nil), &list)
	if list.Count != 1 || list.Records[0].MoveCount != 9 {
		t.Fatalf("unexpected records %+v", list)
	}
	id := list.Records[0].ID

	var st struct {
		Stats history.Stats `json:"stats"`
	}
	decode(t, doJSON(t, r, http.MethodGet, "/stats", nil), &st)
	if st.Stats.TotalGames != 1 || st.Stats.BlackWins != 1 {
		t.Fatalf("unexpected stats %+v", st.Stats)
	}

	var replay struct {
		Board game.Board `json:"board"`
		Step  int        `json:"step"`
		Total int        `json:"total"`
	}
	decode(t, doJSON(t, r, http.MethodGet, "/records/"+id+"/replay?step=3", nil), &replay)
	if replay.Step != 3 || replay.Total != 9 || replay.Board.StoneCount() != 3 {
		t.Fatalf("unexpected replay %+v", replay)
	}

	exp := doJSON(t, r, http.MethodGet, "/records/"+id+"/export", nil)
	if exp.Code != http.StatusOK || !strings.Contains(exp.Header().Get("Content-Disposition"), "attachment") {
		t.Fatalf("export: %d %v", exp.Code, exp.Header())
	}
	imp := doJSON(t, r, http.MethodPost, "/records/import", exp.Body.Bytes())
	if imp.Code != http.StatusCreated {
		t.Fatalf("import: %d %s", imp.Code, imp.Body)
	}
	decode(t, doJSON(t, r, http.MethodGet, "/records", nil), &list)
	if list.Count != 2 {
		t.Fatalf("expected 2 records after import, got %d", list.Count)
	}

	if w := doJSON(t, r, http.MethodDelete, "/records/"+id, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodDelete, "/records/"+id, nil); w.Code != http.StatusNotFound {
		t.Fatalf("second delete: %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/records/"+id, nil); w.Code != http.StatusNotFound {
		t.Fatalf("get deleted: %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodDelete, "/stats", nil); w.Code != http.StatusNoContent {
		t.Fatalf("reset stats: %d", w.Code)
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	r, _ := newTestServer(t)
	w := doJSON(t, r, http.MethodPost, "/records/import", []byte(`{"moves": "nope"}`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestImportRejectsOversizedBody(t *testing.T) {
	r, _ := newTestServer(t)
	body := append([]byte(`{"moves":[],"padding":"`), bytes.Repeat([]byte("x"), maxImportBytes)...)
	body = append(body, `"}`...)

	w := doJSON(t, r, http.MethodPost, "/records/import", body)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", w.Code)
	}
	var list struct {
		Records []history.Record `json:"records"`
	}
	decode(t, doJSON(t, r, http.MethodGet, "/records", nil), &list)
	if len(list.Records) != 0 {
		t.Fatalf("oversized import stored %d records", len(list.Records))
	}
}

func TestRoomErrors(t *testing.T) {
	r, _ := newTestServer(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   interface{}
		want   int
	}{
		{"unknown room", http.MethodGet, "/rooms/NOPE00", nil, http.StatusNotFound},
		{"move in unknown room", http.MethodPost, "/move", gin.H{"roomCode": "NOPE00", "playerId": "x"}, http.StatusNotFound},
		{"move without player", http.MethodPost, "/move", gin.H{"roomCode": "NOPE00"}, http.StatusBadRequest},
		{"bad mode", http.MethodPost, "/rooms", gin.H{"mode": "blitz"}, http.StatusBadRequest},
		{"bad bot stone", http.MethodPost, "/rooms", gin.H{"mode": "ai", "botStone": "red"}, http.StatusBadRequest},
		{"join unknown", http.MethodPost, "/rooms/join", gin.H{"roomCode": "NOPE00"}, http.StatusNotFound},
		{"hint unknown", http.MethodGet, "/hint?roomCode=NOPE00", nil, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if w := doJSON(t, r, tc.method, tc.path, tc.body); w.Code != tc.want {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tc.want, w.Body)
			}
		})
	}
}

func TestBlackBotOpensAtCenter(t *testing.T) {
	r, _ := newTestServer(t)

	var cr createResp
	decode(t, doJSON(t, r, http.MethodPost, "/rooms", gin.H{"mode": "ai", "botStone": "black"}), &cr)
	if len(cr.Room.Moves) != 1 {
		t.Fatalf("expected the bot's opening move, got %d moves", len(cr.Room.Moves))
	}
	if m := cr.Room.Moves[0]; m.Row != 7 || m.Col != 7 || m.Player != game.Black {
		t.Fatalf("opening = %+v, want black at center", m)
	}
	if cr.PlayerID != seatID(cr.Room, game.White) {
		t.Fatal("playerId should be the human seat")
	}

	w := doJSON(t, r, http.MethodPost, "/move-bot", gin.H{"roomCode": cr.RoomCode})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bot move out of turn: %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/move", gin.H{"roomCode": cr.RoomCode, "playerId": cr.PlayerID, "row": 6, "col": 6})
	if w.Code != http.StatusOK {
		t.Fatalf("human move: %d %s", w.Code, w.Body)
	}
	w = doJSON(t, r, http.MethodPost, "/undo", gin.H{"roomCode": cr.RoomCode, "playerId": cr.PlayerID})
	if w.Code != http.StatusConflict {
		t.Fatalf("undo before the bot replied: %d %s", w.Code, w.Body)
	}
	var br struct {
		Row, Col int
		Room     match.View `json:"room"`
	}
	decode(t, doJSON(t, r, http.MethodPost, "/move-bot", gin.H{"roomCode": cr.RoomCode}), &br)
	if len(br.Room.Moves) != 3 || br.Room.Board.At(game.Coord{Row: br.Row, Col: br.Col}) != game.Black {
		t.Fatalf("unexpected bot reply %+v", br)
	}

	w = doJSON(t, r, http.MethodPost, "/undo", gin.H{"roomCode": cr.RoomCode, "playerId": cr.PlayerID})
	if w.Code != http.StatusOK {
		t.Fatalf("undo: %d %s", w.Code, w.Body)
	}
	var ur struct {
		Room match.View `json:"room"`
	}
	decode(t, w, &ur)
	if len(ur.Room.Moves) != 1 {
		t.Fatalf("undo left %d moves, want 1", len(ur.Room.Moves))
	}

	decode(t, doJSON(t, r, http.MethodPost, "/restart", gin.H{"roomCode": cr.RoomCode}), &ur)
	if len(ur.Room.Moves) != 1 || ur.Room.Status != match.StatusPlaying {
		t.Fatalf("restart should replay the bot opening: %+v", ur.Room)
	}
}

func TestOnlineJoinAndHint(t *testing.T) {
	r, _ := newTestServer(t)

	var cr createResp
	decode(t, doJSON(t, r, http.MethodPost, "/rooms", gin.H{"playerName": "host", "mode": "online"}), &cr)
	if cr.Room.Status != match.StatusWaiting {
		t.Fatalf("status = %s, want waiting", cr.Room.Status)
	}
	if w := doJSON(t, r, http.MethodGet, "/hint?roomCode="+cr.RoomCode, nil); w.Code != http.StatusConflict {
		t.Fatalf("hint before start: %d", w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/rooms/join", gin.H{"roomCode": cr.RoomCode, "playerName": "guest"})
	if w.Code != http.StatusOK {
		t.Fatalf("join: %d %s", w.Code, w.Body)
	}
	if w := doJSON(t, r, http.MethodPost, "/rooms/join", gin.H{"roomCode": cr.RoomCode}); w.Code != http.StatusConflict {
		t.Fatalf("second join: %d", w.Code)
	}

	doJSON(t, r, http.MethodPost, "/move", gin.H{"roomCode": cr.RoomCode, "playerId": cr.PlayerID, "row": 7, "col": 7})
	var hr struct {
		Hints []game.ScoredMove `json:"hints"`
		Best  *game.ScoredMove  `json:"best"`
	}
	decode(t, doJSON(t, r, http.MethodGet, "/hint?roomCode="+cr.RoomCode+"&limit=3", nil), &hr)
	if len(hr.Hints) != 3 || hr.Best == nil || hr.Best.Coord != hr.Hints[0].Coord {
		t.Fatalf("unexpected hints %+v", hr)
	}
}

func TestSelectMoveEndpoint(t *testing.T) {
	r, _ := newTestServer(t)

	var out struct {
		Found bool       `json:"found"`
		Move  game.Coord `json:"move"`
	}
	w := doJSON(t, r, http.MethodPost, "/engine/select-move", gin.H{"board": game.NewBoard(15), "player": game.Black})
	decode(t, w, &out)
	if !out.Found || out.Move != (game.Coord{Row: 7, Col: 7}) {
		t.Fatalf("empty board: %+v", out)
	}

	b, err := game.ParseBoard(
		".......",
		".......",
		".XXXX..",
		".OOO...",
		".......",
		".......",
		".......",
	)
	if err != nil {
		t.Fatal(err)
	}
	last := game.Coord{Row: 3, Col: 3}
	decode(t, doJSON(t, r, http.MethodPost, "/engine/select-move", gin.H{"board": b, "player": game.Black, "lastMove": last, "seed": 7}), &out)
	if !out.Found || out.Move.Row != 2 || (out.Move.Col != 0 && out.Move.Col != 5) {
		t.Fatalf("expected black to complete five, got %+v", out)
	}

	full, _ := game.ParseBoard("XOX", "OXO", "OXO")
	decode(t, doJSON(t, r, http.MethodPost, "/engine/select-move", gin.H{"board": full, "player": game.White}), &out)
	if out.Found {
		t.Fatal("full board should report no move")
	}

	bad := []gin.H{
		{"board": game.NewBoard(15), "player": 0},
		{"board": gin.H{"size": 3, "cells": [][]int{{0, 0}, {0, 0}}}, "player": 1},
		{"board": gin.H{"size": 2, "cells": [][]int{{0, 3}, {0, 0}}}, "player": 1},
		{"board": game.NewBoard(15), "player": 1, "weights": gin.H{"five": -1}},
	}
	for i, body := range bad {
		if w := doJSON(t, r, http.MethodPost, "/engine/select-move", body); w.Code != http.StatusBadRequest {
			t.Errorf("case %d: status = %d, want 400", i, w.Code)
		}
	}
}

func TestDetectWinEndpoint(t *testing.T) {
	r, _ := newTestServer(t)

	b, _ := game.ParseBoard(
		"......",
		"OXXXXX",
		"......",
		"......",
		"......",
		"......",
	)
	var out struct {
		Win   bool       `json:"win"`
		Stone game.Stone `json:"stone"`
	}
	decode(t, doJSON(t, r, http.MethodPost, "/engine/detect-win", gin.H{"board": b, "placed": game.Coord{Row: 1, Col: 3}}), &out)
	if !out.Win || out.Stone != game.Black {
		t.Fatalf("expected black win, got %+v", out)
	}
	decode(t, doJSON(t, r, http.MethodPost, "/engine/detect-win", gin.H{"board": b, "placed": game.Coord{Row: 1, Col: 0}}), &out)
	if out.Win {
		t.Fatal("lone white stone is not a win")
	}

	for _, at := range []game.Coord{{Row: 0, Col: 0}, {Row: 6, Col: 0}} {
		if w := doJSON(t, r, http.MethodPost, "/engine/detect-win", gin.H{"board": b, "placed": at}); w.Code != http.StatusBadRequest {
			t.Errorf("placed %v: status = %d, want 400", at, w.Code)
		}
	}
}

func TestRoomWeights(t *testing.T) {
	r, _ := newTestServer(t)

	var cr createResp
	decode(t, doJSON(t, r, http.MethodPost, "/rooms", gin.H{"mode": "ai"}), &cr)

	bad := game.DefaultWeights()
	bad.OpenFour = bad.Five + 1
	if w := doJSON(t, r, http.MethodPost, "/config/weights/room", gin.H{"roomCode": cr.RoomCode, "weights": bad}); w.Code != http.StatusBadRequest {
		t.Fatalf("invalid weights: %d", w.Code)
	}

	good := game.DefaultWeights()
	good.OpenOne = 1
	if w := doJSON(t, r, http.MethodPost, "/config/weights/room", gin.H{"roomCode": cr.RoomCode, "weights": good}); w.Code != http.StatusOK {
		t.Fatalf("update weights: %d %s", w.Code, w.Body)
	}

	var got struct {
		Weights      game.Weights `json:"weights"`
		IsCustomized bool         `json:"isCustomized"`
	}
	decode(t, doJSON(t, r, http.MethodGet, "/config/weights/room?roomCode="+cr.RoomCode, nil), &got)
	if !got.IsCustomized || got.Weights != good {
		t.Fatalf("unexpected room weights %+v", got)
	}

	doJSON(t, r, http.MethodPost, "/config/weights/room", gin.H{"roomCode": cr.RoomCode, "reset": true})
	decode(t, doJSON(t, r, http.MethodGet, "/config/weights/room?roomCode="+cr.RoomCode, nil), &got)
	if got.IsCustomized || got.Weights != game.DefaultWeights() {
		t.Fatalf("reset did not restore defaults: %+v", got)
	}

	decode(t, doJSON(t, r, http.MethodGet, "/config/weights/default", nil), &got)
	if got.Weights != game.DefaultWeights() {
		t.Fatalf("default weights = %+v", got.Weights)
	}
}

func TestWeightsFollowInjectedConfig(t *testing.T) {
	cfg := config.Load()
	cfg.DefaultWeights.OpenTwo = 150
	cfg.AttackBias = 1.5
	r, _ := newTestServerWithConfig(t, cfg)

	var def struct {
		Weights    game.Weights `json:"weights"`
		AttackBias float64      `json:"attackBias"`
	}
	decode(t, doJSON(t, r, http.MethodGet, "/config/weights/default", nil), &def)
	if def.Weights != cfg.DefaultWeights || def.AttackBias != 1.5 {
		t.Fatalf("default endpoint ignored the server config: %+v", def)
	}

	var cr createResp
	decode(t, doJSON(t, r, http.MethodPost, "/rooms", gin.H{"mode": "ai"}), &cr)
	var got struct {
		Weights      game.Weights `json:"weights"`
		IsCustomized bool         `json:"isCustomized"`
	}
	decode(t, doJSON(t, r, http.MethodGet, "/config/weights/room?roomCode="+cr.RoomCode, nil), &got)
	if got.IsCustomized || got.Weights != cfg.DefaultWeights {
		t.Fatalf("new room weights = %+v, want server defaults", got)
	}

	custom := cfg.DefaultWeights
	custom.OpenOne = 1
	doJSON(t, r, http.MethodPost, "/config/weights/room", gin.H{"roomCode": cr.RoomCode, "weights": custom})
	decode(t, doJSON(t, r, http.MethodPost, "/config/weights/room", gin.H{"roomCode": cr.RoomCode, "reset": true}), &got)
	if got.Weights != cfg.DefaultWeights {
		t.Fatalf("reset returned %+v, want server defaults", got.Weights)
	}
}
