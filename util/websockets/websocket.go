package websockets

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// WebSocketManager handles WebSocket connections and messaging
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewWebSocketManager initializes a WebSocketManager
func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[*websocket.Conn]*Client),
		broadcast:  make(chan SignalUpdate),
		register:   make(chan *Client),
		unregister: make(chan *websocket.Conn),
	}
}

// Run starts the WebSocket manager
func (manager *WebSocketManager) Run() {
	for {
		select {
		case client := <-manager.register:
			manager.mu.Lock()
			manager.clients[client.Conn] = client
			manager.mu.Unlock()

		case conn := <-manager.unregister:
			manager.mu.Lock()
			if _, exists := manager.clients[conn]; exists {
				delete(manager.clients, conn)
				conn.Close()
			}
			manager.mu.Unlock()

		case update := <-manager.broadcast:
			message, err := json.Marshal(update)
			if err != nil {
				log.Printf("failed to encode signal update: %v", err)
				continue
			}
			manager.mu.Lock()
			for conn, client := range manager.clients {
				// detail panels subscribe to one signal; skip the rest
				if client.SignalID != "" && client.SignalID != update.SignalID {
					continue
				}
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(manager.clients, conn)
				}
			}
			manager.mu.Unlock()
		}
	}
}

// BroadcastSignalUpdate notifies every connected view that a signal
// changed. Delivery is advisory; views refetch on receipt.
func (manager *WebSocketManager) BroadcastSignalUpdate(signalID string) {
	update := SignalUpdate{Type: MsgTypeSignalUpdate, SignalID: signalID}

	// Advisory: drop the event when the manager is not draining.
	select {
	case manager.broadcast <- update:
	default:
	}
}

// HandleConnections upgrades an HTTP request and keeps the connection
// registered until the peer goes away.
func (manager *WebSocketManager) HandleConnections(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	client := &Client{Conn: conn}
	manager.register <- client

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			manager.unregister <- conn
			break
		}

		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		if msg.Type == MsgTypeSubscribe {
			manager.mu.Lock()
			client.SignalID = msg.SignalID
			manager.mu.Unlock()
		}
	}
}
