package httpserver

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const wsIdlePingInterval = 30 * time.Second

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type statePush struct {
	gameID string
	state  StateResponse
}

// Hub 按 game_id 分组的 WebSocket 客户端，每次改动后推一份完整状态
type Hub struct {
	mu        sync.Mutex
	clients   map[string]map[*Client]struct{}
	broadcast chan statePush
}

type Client struct {
	gameID string
	send   chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[string]map[*Client]struct{}),
		broadcast: make(chan statePush, 32),
	}
}

func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case p := <-h.broadcast:
			msg := wsMessage{Type: "state", Payload: mustMarshal(p.state)}
			h.mu.Lock()
			for c := range h.clients[p.gameID] {
				c.sendJSON(msg)
			}
			h.mu.Unlock()
		}
	}
}

// Publish 不阻塞；队列满了就丢，客户端可以再要一次
func (h *Hub) Publish(gameID string, st StateResponse) {
	select {
	case h.broadcast <- statePush{gameID: gameID, state: st}:
	default:
		log.Printf("[ws] broadcast queue full, dropping state for %s", gameID)
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.gameID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.gameID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.clients[c.gameID]
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.clients, c.gameID)
	}
}

func (h *Hub) ClientCount(gameID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[gameID])
}

func (c *Client) sendJSON(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// GET /ws?game_id=...：先推当前状态，之后每次改动推一次；
// 客户端发 {"type":"request_state"} 可主动再要一份
func (h *Handler) handleWS(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("game_id")
	sess, err := h.mgr.Get(id)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	client := &Client{gameID: id, send: make(chan []byte, 16)}
	h.hub.Register(client)
	client.sendJSON(wsMessage{Type: "state", Payload: mustMarshal(h.snapshot(sess))})

	go func() {
		defer conn.Close()
		if err := writeWSWithHeartbeat(conn, client.send); err != nil {
			return
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			h.hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "request_state":
			client.sendJSON(wsMessage{Type: "state", Payload: mustMarshal(h.snapshot(sess))})
		}
	}
}

func writeWSWithHeartbeat(conn *websocket.Conn, send <-chan []byte) error {
	ticker := time.NewTicker(wsIdlePingInterval)
	defer ticker.Stop()
	lastWrite := time.Now()
	pingPayload := mustMarshal(wsMessage{Type: "ping"})

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < wsIdlePingInterval {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, pingPayload); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}
