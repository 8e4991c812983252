package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"gomoku/internal/match"
)

const (
	pingInterval = 30 * time.Second
	writeWait    = 10 * time.Second
)

// client serializes writes to one connection.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(v)
}

// Hub tracks the sockets watching each room. mu guards the rooms map only;
// it is never held while writing.
type Hub struct {
	mu          sync.Mutex
	rooms       map[string]map[*client]struct{}
	roomManager RoomManager
	botDelay    time.Duration
}

// NewHub builds a hub. botDelay is waited before the bot answers a move
// received over the socket.
func NewHub(roomManager RoomManager, botDelay time.Duration) *Hub {
	return &Hub{
		rooms:       make(map[string]map[*client]struct{}),
		roomManager: roomManager,
		botDelay:    botDelay,
	}
}

// SetRoomManager breaks the construction cycle between hub and manager.
func (h *Hub) SetRoomManager(rm RoomManager) {
	h.roomManager = rm
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

type message struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data,omitempty"`
}

type moveData struct {
	PlayerID string `json:"playerId"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	room, ok := h.roomManager.Get(roomCode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	log.Printf("WebSocket connection established for room: %s", roomCode)

	cl := &client{conn: conn}
	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*client]struct{})
	}
	h.rooms[roomCode][cl] = struct{}{}
	h.mu.Unlock()

	done := make(chan struct{})
	go keepAlive(conn, done)

	defer func() {
		close(done)
		h.remove(roomCode, cl)
	}()

	h.send(cl, "state", gin.H{"room": room.Snapshot()})

	for {
		var msg message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Error reading WebSocket message: %v", err)
			}
			return
		}

		switch msg.Action {
		case "move":
			var mv moveData
			if err := json.Unmarshal(msg.Data, &mv); err != nil {
				h.send(cl, "error", gin.H{"message": "invalid move data"})
				continue
			}
			if err := h.roomManager.ApplyMove(room, mv.PlayerID, mv.Row, mv.Col); err != nil {
				h.send(cl, "error", gin.H{"message": err.Error()})
				continue
			}
			go h.playBotIfDue(room, h.botDelay)
		case "bot_move":
			h.playBotIfDue(room, 0)
		default:
			log.Printf("Unknown action: %s", msg.Action)
		}
	}
}

// playBotIfDue answers with the engine when the bot is on move. The manager
// broadcasts the resulting move.
func (h *Hub) playBotIfDue(room *match.Room, delay time.Duration) {
	bot, ok := h.roomManager.DueBot(room)
	if !ok {
		return
	}
	if delay > 0 {
		time.Sleep(delay)
	}
	if _, err := h.roomManager.BotMove(room, bot.ID); err != nil {
		log.Printf("Bot move failed in room %s: %v", room.Code, err)
	}
}

// Broadcast sends an event to every connection watching roomCode.
func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	if h == nil {
		return
	}

	msg := gin.H{
		"action": action,
		"data":   data,
	}
	for _, cl := range h.clients(roomCode) {
		if err := cl.write(msg); err != nil {
			log.Printf("Failed to send message: %v", err)
			h.remove(roomCode, cl)
		}
	}
}

// clients snapshots the connections watching roomCode.
func (h *Hub) clients(roomCode string) []*client {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*client, 0, len(h.rooms[roomCode]))
	for cl := range h.rooms[roomCode] {
		out = append(out, cl)
	}
	return out
}

func (h *Hub) remove(roomCode string, cl *client) {
	h.mu.Lock()
	delete(h.rooms[roomCode], cl)
	if len(h.rooms[roomCode]) == 0 {
		delete(h.rooms, roomCode)
	}
	h.mu.Unlock()
	_ = cl.conn.Close()
}

func (h *Hub) send(cl *client, action string, data interface{}) {
	if err := cl.write(gin.H{"action": action, "data": data}); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func keepAlive(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			deadline := time.Now().Add(writeWait)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}
