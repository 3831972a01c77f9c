package ws

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/Techkepper/PoskepperApi/pkg/events"
	"github.com/Techkepper/PoskepperApi/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

// OrderHub pushes order events to every connected kitchen/floor screen.
type OrderHub struct {
	clients    map[*client]bool
	broadcast  chan events.Envelope
	register   chan *client
	unregister chan *client
	done       chan struct{}
	mu         sync.RWMutex
	log        logrus.FieldLogger
	upgrader   websocket.Upgrader
}

type client struct {
	conn   *websocket.Conn
	send   chan events.Envelope
	userID int64
}

func NewOrderHub(log logrus.FieldLogger, origin string) *OrderHub {
	return &OrderHub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan events.Envelope, 64),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		log:        log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				o := r.Header.Get("Origin")
				return o == "" || origin == "" || origin == "*" || o == origin
			},
		},
	}
}

// Run owns the client set until ctx is cancelled.
func (h *OrderHub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if h.clients[c] {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// slow reader
					h.log.WithField("user", c.userID).Warn("ws client dropped, send buffer full")
					delete(h.clients, c)
					close(c.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish queues an event for broadcast without blocking the caller.
func (h *OrderHub) Publish(event string, payload any) {
	select {
	case h.broadcast <- events.Envelope{Event: event, Data: payload}:
	default:
		h.log.WithField("event", event).Warn("ws broadcast queue full, event dropped")
	}
}

func (h *OrderHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// HandleWebSocket serves /ws/ordenes. The auth middleware has already set
// the user on the context.
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Warn("ws upgrade")
		return
	}

	cl := &client{conn: conn, send: make(chan events.Envelope, sendBuffer), userID: utils.CurrentUserID(c)}
	select {
	case h.register <- cl:
	case <-h.done:
		conn.Close()
		return
	}

	go h.writePump(cl)
	go h.readPump(cl)
}

// readPump only drains control frames; clients never send events.
func (h *OrderHub) readPump(c *client) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.WithError(err).Debug("ws read")
			}
			return
		}
	}
}

func (h *OrderHub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				h.log.WithError(err).Debug("ws write")
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
