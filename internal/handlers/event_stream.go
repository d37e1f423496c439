package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	streamWriteTimeout = 10 * time.Second
	streamSendBuffer   = 64
)

var streamUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// origin filtering happens in the CORS middleware
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamEnvelope is the frame pushed to websocket subscribers.
type StreamEnvelope struct {
	Event     string      `json:"event"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EventHub fans settlement events out to websocket subscribers. It implements
// the settlement emitter interface, so it can be wired directly into the
// service next to the message-queue publisher.
type EventHub struct {
	mu      sync.RWMutex
	clients map[*streamClient]struct{}
}

type streamClient struct {
	conn *websocket.Conn
	send chan StreamEnvelope
}

func NewEventHub() *EventHub {
	return &EventHub{clients: make(map[*streamClient]struct{})}
}

// Emit pushes an event frame to every connected subscriber. Slow subscribers
// are dropped rather than allowed to block settlement.
func (h *EventHub) Emit(event string, payload interface{}) {
	frame := StreamEnvelope{
		Event:     event,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.send <- frame:
		default:
			go h.drop(client)
		}
	}
}

func (h *EventHub) drop(client *streamClient) {
	h.mu.Lock()
	_, ok := h.clients[client]
	if ok {
		delete(h.clients, client)
	}
	h.mu.Unlock()
	if ok {
		close(client.send)
		client.conn.Close()
	}
}

// Serve upgrades the request and streams events until the client goes away.
func (h *EventHub) Serve(c *gin.Context) {
	conn, err := streamUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warnf("Websocket upgrade failed: %v", err)
		return
	}

	client := &streamClient{
		conn: conn,
		send: make(chan StreamEnvelope, streamSendBuffer),
	}

	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()

	go h.writeLoop(client)
	go h.readLoop(client)
}

func (h *EventHub) writeLoop(client *streamClient) {
	for frame := range client.send {
		client.conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
		if err := client.conn.WriteJSON(frame); err != nil {
			h.drop(client)
			return
		}
	}
}

// readLoop discards inbound frames; its job is to notice the disconnect.
func (h *EventHub) readLoop(client *streamClient) {
	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			h.drop(client)
			return
		}
	}
}
