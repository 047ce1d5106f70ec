package websockets

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Message types
const (
	MsgTypeSubscribe    = "subscribe"
	MsgTypeSignalUpdate = "signal_update"
)

// Client represents a connected console view
type Client struct {
	Conn     *websocket.Conn
	SignalID string // non-empty when subscribed to a single detail panel
}

type WebSocketManager struct {
	clients    map[*websocket.Conn]*Client
	broadcast  chan SignalUpdate
	register   chan *Client
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

// Message struct for incoming WebSocket messages
type Message struct {
	Type     string `json:"type"`
	SignalID string `json:"signal_id,omitempty"`
}

// SignalUpdate is pushed to connected views after a successful save,
// upload or delete so they refetch.
type SignalUpdate struct {
	Type     string `json:"type"`
	SignalID string `json:"signal_id"`
}
