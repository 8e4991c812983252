package main

import (
	"log"
	"net/http"

	_ "gomoku/docs"
	httpapi "gomoku/internal/api/http"
	"gomoku/internal/api/ws"
	"gomoku/internal/config"
	"gomoku/internal/match"
	"gomoku/internal/store"

	"github.com/gin-gonic/gin"
)

// @title Gomoku Engine API
// @version 1.0
// @description REST API for a heuristic gomoku bot (Go + Gin)
// @contact.name Backend Team
// @BasePath /
func main() {
	cfg := config.Get()

	db, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("open %s: %v", cfg.DBPath, err)
	}
	defer db.Close()

	mem := store.NewMemoryStore()
	rm := match.NewManager(mem, *cfg, nil, db)
	hub := ws.NewHub(rm, cfg.BotDelay)
	rm.SetHub(hub)

	r := httpapi.NewRouter(rm, db, hub, *cfg)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	log.Printf("listening on %s (board %dx%d, db %s)", cfg.HTTPAddr, cfg.BoardSize, cfg.BoardSize, cfg.DBPath)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
