package network

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/lixenwraith/snake/engine"
)

const readLimit = 512

// Hub broadcasts snapshots to websocket spectators. It implements render.Renderer.
// Slow spectators lose frames; they never slow the game down
type Hub struct {
	cfg      *Config
	session  uuid.UUID
	field    engine.FieldSource
	upgrader websocket.Upgrader

	mu          sync.Mutex
	subscribers map[*subscriber]struct{}
	reserved    int
	gameOver    bool
	closed      bool

	dropped atomic.Uint64
}

type subscriber struct {
	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func (s *subscriber) close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

// NewHub creates a hub for the given session. field may be nil
func NewHub(cfg *Config, session uuid.UUID, field engine.FieldSource) *Hub {
	return &Hub{
		cfg:         cfg,
		session:     session,
		field:       field,
		subscribers: make(map[*subscriber]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the request and streams frames until either side goes away
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.reserve() {
		http.Error(w, "too many spectators", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.release()
		log.Printf("spectator upgrade failed: %v", err)
		return
	}

	sub := &subscriber{
		conn: conn,
		send: make(chan []byte, h.cfg.SendQueueSize+2),
		done: make(chan struct{}),
	}

	hello, err := h.encode(Message{Type: MsgHello, Session: h.session.String(), Field: h.currentField()})
	if err != nil {
		h.release()
		conn.Close()
		return
	}
	sub.send <- hello

	if !h.register(sub) {
		conn.Close()
		return
	}
	log.Printf("spectator connected: %s", r.RemoteAddr)

	go h.writePump(sub)
	h.readPump(sub)

	h.unregister(sub)
	log.Printf("spectator disconnected: %s", r.RemoteAddr)
}

// reserve claims a subscriber slot ahead of the upgrade so concurrent requests cannot exceed the cap
func (h *Hub) reserve() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed || len(h.subscribers)+h.reserved >= h.cfg.MaxSubscribers {
		return false
	}
	h.reserved++
	return true
}

func (h *Hub) release() {
	h.mu.Lock()
	h.reserved--
	h.mu.Unlock()
}

// register turns a reserved slot into a subscriber, replaying the terminal notification to late joiners
func (h *Hub) register(sub *subscriber) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.reserved--
	if h.closed {
		return false
	}
	if h.gameOver {
		if data, err := h.encode(Message{Type: MsgGameOver, Session: h.session.String()}); err == nil {
			sub.send <- data
		}
	}
	h.subscribers[sub] = struct{}{}
	return true
}

func (h *Hub) unregister(sub *subscriber) {
	h.mu.Lock()
	delete(h.subscribers, sub)
	h.mu.Unlock()
	sub.close()
}

// readPump discards client frames; it only exists to notice disconnects
func (h *Hub) readPump(sub *subscriber) {
	sub.conn.SetReadLimit(readLimit)
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(sub *subscriber) {
	defer sub.conn.Close()

	for {
		select {
		case <-sub.done:
			deadline := time.Now().Add(h.cfg.WriteTimeout)
			_ = sub.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
			return

		case data := <-sub.send:
			if err := sub.conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout)); err != nil {
				return
			}
			if err := sub.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	}
}

// Render implements render.Renderer
func (h *Hub) Render(state engine.GameState) error {
	data, err := h.encode(Message{Type: MsgState, State: &state})
	if err != nil {
		return err
	}
	h.broadcast(data)
	return nil
}

// RenderGameOver implements render.Renderer
func (h *Hub) RenderGameOver() error {
	data, err := h.encode(Message{Type: MsgGameOver, Session: h.session.String()})
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.gameOver = true
	h.mu.Unlock()

	h.broadcast(data)
	return nil
}

// broadcast queues data on every subscriber without blocking
func (h *Hub) broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subscribers {
		select {
		case sub.send <- data:
		default:
			h.dropped.Add(1)
		}
	}
}

// Close disconnects every spectator and refuses new ones
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for sub := range h.subscribers {
		sub.close()
		delete(h.subscribers, sub)
	}
}

// Subscribers returns the number of connected spectators
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Dropped returns frames discarded because a spectator's queue was full
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

func (h *Hub) currentField() *engine.Field {
	if h.field == nil {
		return nil
	}
	f := h.field()
	return &f
}

func (h *Hub) encode(msg Message) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode %s frame: %w", msg.Type, err)
	}
	return data, nil
}
