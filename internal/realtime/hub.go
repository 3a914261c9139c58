package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"go-crm/internal/shared/apperror"
	"go-crm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 32
)

// PresenceUpdater persists a presence change reported by a socket client.
type PresenceUpdater interface {
	UpdatePresence(ctx context.Context, userID, presence string) error
}

type inbound struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type presencePayload struct {
	Presence string `json:"presence"`
}

// ChatMessage is relayed from one user's sockets to another's. From and
// SentAt are always set by the server.
type ChatMessage struct {
	ID     string    `json:"id"`
	From   string    `json:"from"`
	To     string    `json:"to"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sentAt"`
}

type typingPayload struct {
	From string `json:"from"`
	To   string `json:"to,omitempty"`
}

type client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	userID string
}

// Hub keeps socket clients grouped in rooms keyed by user id. A client only
// ever belongs to the room of the user it authenticated as.
type Hub struct {
	mu       sync.RWMutex
	rooms    map[string]map[*client]struct{}
	clients  map[*client]struct{}
	upgrader websocket.Upgrader
	presence PresenceUpdater
	relay    Publisher
	now      func() time.Time
	logger   *zap.Logger
}

func NewHub(presence PresenceUpdater, logger ...*zap.Logger) *Hub {
	l := zap.L().Named("realtime.hub")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("realtime.hub")
	}
	return &Hub{
		rooms:    make(map[string]map[*client]struct{}),
		clients:  make(map[*client]struct{}),
		presence: presence,
		now:      time.Now,
		logger:   l,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// WithRelay routes chat frames through p so they reach sockets held by other
// API processes. Without a relay they are delivered to local sockets only.
func (h *Hub) WithRelay(p Publisher) *Hub {
	h.relay = p
	return h
}

// Deliver writes env to the sockets in its room, or to every socket when the room is empty.
func (h *Hub) Deliver(env Envelope) {
	raw, err := json.Marshal(inbound{Event: env.Event, Data: env.Data})
	if err != nil {
		h.logger.Warn("encode outbound frame failed", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	targets := h.clients
	if env.Room != "" {
		targets = h.rooms[env.Room]
	}
	for c := range targets {
		select {
		case c.send <- raw:
		default:
			h.logger.Warn("socket send buffer full, dropping frame",
				zap.String("user_id", c.userID),
				zap.String("event", env.Event),
			)
		}
	}
}

// RoomSize reports how many sockets are joined to room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[c.userID] == nil {
		h.rooms[c.userID] = make(map[*client]struct{})
	}
	h.rooms[c.userID][c] = struct{}{}
	h.clients[c] = struct{}{}
}

func (h *Hub) leave(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if room, ok := h.rooms[c.userID]; ok {
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, c.userID)
		}
	}
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// ServeWS upgrades an authenticated request and joins the socket to the
// caller's own room. It must be mounted behind the auth middleware.
func (h *Hub) ServeWS(c *gin.Context) {
	userID := c.GetString("user_id_validated")
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Token not found", nil)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	cl := &client{hub: h, conn: conn, send: make(chan []byte, sendBuffer), userID: userID}
	h.register(cl)

	h.logger.Debug("socket connected", zap.String("user_id", userID))

	go cl.writePump()
	go cl.readPump()
}

func (h *Hub) handle(c *client, msg inbound) {
	ctx, cancel := context.WithTimeout(context.Background(), writeWait)
	defer cancel()

	switch msg.Event {
	case "join", "join_room":
		// Sockets are joined to their own room on connect. Asking for any
		// other room is ignored.
		var room string
		_ = json.Unmarshal(msg.Data, &room)
		if room != "" && room != c.userID {
			h.logger.Warn("socket asked to join a foreign room",
				zap.String("user_id", c.userID),
				zap.String("room", room),
			)
		}
	case "presence_change":
		var p presencePayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			h.logger.Warn("decode presence change failed", zap.Error(err))
			return
		}
		if h.presence == nil || p.Presence == "" {
			return
		}
		if err := h.presence.UpdatePresence(ctx, c.userID, p.Presence); err != nil {
			h.logger.Warn("presence update failed", zap.String("user_id", c.userID), zap.Error(err))
		}
	case "send_message":
		var m ChatMessage
		if err := json.Unmarshal(msg.Data, &m); err != nil || m.To == "" || m.Text == "" {
			return
		}
		m.ID = uuid.NewString()
		m.From = c.userID
		m.SentAt = h.now().UTC()
		h.route(ctx, m.To, EventNewMessage, m)
	case "typing":
		var t typingPayload
		if err := json.Unmarshal(msg.Data, &t); err != nil || t.To == "" {
			return
		}
		h.route(ctx, t.To, EventTyping, typingPayload{From: c.userID})
	}
}

func (h *Hub) route(ctx context.Context, room, event string, data any) {
	if h.relay != nil {
		if err := h.relay.EmitToUser(ctx, room, event, data); err != nil {
			h.logger.Warn("relay socket frame failed", zap.String("event", event), zap.Error(err))
		}
		return
	}
	env, err := NewEnvelope(room, event, data)
	if err != nil {
		h.logger.Warn("encode socket frame failed", zap.String("event", event), zap.Error(err))
		return
	}
	h.Deliver(env)
}

func (c *client) readPump() {
	defer func() {
		c.hub.leave(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Debug("socket closed unexpectedly", zap.String("user_id", c.userID), zap.Error(err))
			}
			return
		}
		var msg inbound
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		c.hub.handle(c, msg)
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
