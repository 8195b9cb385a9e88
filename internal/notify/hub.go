package notify

import (
	"net/http"
	"sync"

	"github.com/bloodlink/bloodlink/internal/domain"
	"github.com/bloodlink/bloodlink/pkg/auth"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const clientBuffer = 16

// Hub upgrades HTTP connections to websockets and keeps each connection
// subscribed to the topics its identity entitles it to.
type Hub struct {
	registry *Registry
	upgrader websocket.Upgrader
}

func NewHub(registry *Registry) *Hub {
	return &Hub{
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type client struct {
	conn *websocket.Conn

	mu     sync.Mutex
	send   chan Notification
	closed bool
}

// Send enqueues without blocking; reports false when the buffer is full or
// the client has disconnected. The mutex keeps Send and shutdown mutually
// exclusive: a registry snapshot taken before the unsubscribe may still
// deliver here, and it must never hit a closed channel.
func (c *client) Send(n Notification) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- n:
		return true
	default:
		return false
	}
}

// shutdown marks the client closed and releases writeLoop. Idempotent.
func (c *client) shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// ServeWS handles the websocket endpoint. Topic subscriptions are derived
// from the authenticated identity: donors listen on their personal topic
// and their blood-group and city rooms, admins on the admin room, everyone
// on their user topic.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Error("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{
		conn: conn,
		send: make(chan Notification, clientBuffer),
	}

	topics := h.topicsFor(identity)
	for _, topic := range topics {
		h.registry.Subscribe(topic, c)
	}
	zap.L().Info("websocket client connected",
		zap.Int("user_id", identity.UserID),
		zap.Strings("topics", topics))

	go h.writeLoop(c)
	go h.readLoop(c)
}

func (h *Hub) topicsFor(identity auth.Identity) []string {
	topics := []string{TopicUser(identity.UserID)}
	switch identity.Role {
	case string(domain.RoleDonor):
		topics = append(topics, TopicDonor(identity.UserID))
		if identity.BloodGroup != "" {
			topics = append(topics, TopicBloodGroup(identity.BloodGroup))
		}
		if identity.City != "" {
			topics = append(topics, TopicCity(identity.City))
		}
	case string(domain.RoleAdmin):
		topics = append(topics, TopicAdminRoom)
	}
	return topics
}

func (h *Hub) writeLoop(c *client) {
	defer c.conn.Close()
	for n := range c.send {
		if err := c.conn.WriteJSON(n); err != nil {
			zap.L().Warn("websocket write failed", zap.Error(err))
			return
		}
	}
}

// readLoop drains client frames and prunes subscriptions on disconnect.
func (h *Hub) readLoop(c *client) {
	defer func() {
		h.registry.UnsubscribeAll(c)
		c.shutdown()
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
