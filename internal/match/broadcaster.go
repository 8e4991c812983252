package match

import "gomoku/internal/history"

type Broadcaster interface {
	Broadcast(roomCode string, action string, data interface{})
}

// Recorder receives finished games.
type Recorder interface {
	SaveRecord(rec history.Record) error
	RecordResult(res history.Result) error
}
