package main

import (
	"log"

	"github.com/rivo/tview"

	"gomoku/internal/config"
	"gomoku/internal/match"
	"gomoku/internal/store"
)

func main() {
	cfg := config.Get()

	db, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("open %s: %v", cfg.DBPath, err)
	}
	defer db.Close()

	app := tview.NewApplication()
	status := tview.NewTextView().SetDynamicColors(false)

	rm := match.NewManager(store.NewMemoryStore(), *cfg, nil, db)
	board := newBoardView(app, status, rm, cfg.BotDelay)
	rm.SetHub(board)

	layout := tview.NewFlex().
		AddItem(board.Box, cfg.BoardSize*2+6, 0, true).
		AddItem(status, 0, 1, false)
	layout.SetBorder(true).SetTitle(" Gomoku ")

	app.SetInputCapture(board.handleKey)
	if err := app.SetRoot(layout, true).Run(); err != nil {
		log.Fatal(err)
	}
}
