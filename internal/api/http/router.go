package http

import (
	"gomoku/internal/api/ws"
	"gomoku/internal/config"
	"gomoku/internal/match"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(rm *match.Manager, records RecordStore, hub *ws.Hub, cfg config.Config) *gin.Engine {
	r := gin.Default()

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/rooms", CreateRoomHandler(rm))
	r.POST("/rooms/join", JoinRoomHandler(rm))
	r.GET("/rooms/:code", GetRoomHandler(rm))

	// --- GAME ENDPOINTS ---
	r.POST("/move", MoveHandler(rm))
	r.POST("/move-bot", MoveBotHandler(rm))
	r.POST("/undo", UndoHandler(rm))
	r.POST("/restart", RestartHandler(rm))
	r.GET("/hint", HintHandler(rm))

	// --- ENGINE ENDPOINTS ---
	eh := NewEngineHandler(cfg)
	r.POST("/engine/select-move", eh.SelectMoveHandler)
	r.POST("/engine/detect-win", eh.DetectWinHandler)

	// --- RECORD ENDPOINTS ---
	rh := NewRecordsHandler(records)
	r.GET("/records", rh.ListHandler)
	r.DELETE("/records", rh.ClearHandler)
	r.POST("/records/import", rh.ImportHandler)
	r.GET("/records/:id", rh.GetHandler)
	r.GET("/records/:id/export", rh.ExportHandler)
	r.GET("/records/:id/replay", rh.ReplayHandler)
	r.DELETE("/records/:id", rh.DeleteHandler)
	r.GET("/stats", rh.StatsHandler)
	r.DELETE("/stats", rh.ResetStatsHandler)

	// --- CONFIG ENDPOINTS ---
	ch := NewConfigHandler(rm, cfg)
	r.GET("/config/weights/default", ch.GetDefaultWeightsHandler)
	r.GET("/config/weights/room", ch.GetRoomWeightsHandler)
	r.POST("/config/weights/room", ch.UpdateRoomWeightsHandler)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
