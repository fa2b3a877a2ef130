package config

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader websocket.Upgrader
	// ReadLimit caps the size of a single client message.
	ReadLimit int64
	PongWait  time.Duration
}

// NewWebSocket reads WS_BUFFER_SIZE and WS_READ_LIMIT, both in bytes.
func NewWebSocket() *WebSocket {
	size := intEnv("WS_BUFFER_SIZE", 1024)
	return &WebSocket{
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  size,
			WriteBufferSize: size,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		ReadLimit: int64(intEnv("WS_READ_LIMIT", 512)),
		PongWait:  time.Minute,
	}
}
