// Package presence tracks which users currently hold a realtime connection
// and routes hire notifications to them. A user has at most one tracked
// connection; a new connection for the same user replaces the old one.
package presence

import (
	"sync"

	"gigflow/backend/internal/models"

	log "github.com/sirupsen/logrus"

	"github.com/redis/go-redis/v9"
)

// Subscriber is the fan-in side of the storage layer: the subscription the
// pub/sub listener drains.
type Subscriber interface {
	SubscribeNotifications() *redis.PubSub
}

// Hub owns the userID -> connection registry. Connection lifecycle events
// and notification routing go through its channels; the map itself is
// additionally guarded so Lookup can be called from any goroutine.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]Client

	RegisterCh   chan Client
	UnregisterCh chan Client
	NotifyCh     chan models.Notification

	Storage Subscriber
}

func NewHub(s Subscriber) *Hub {
	return &Hub{
		clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		NotifyCh:     make(chan models.Notification, 64),
		Storage:      s,
	}
}

// Run is the hub dispatcher loop. It is the only writer of the registry.
func (h *Hub) Run() {
	log.Info("presence: hub started")
	for {
		select {
		case client := <-h.RegisterCh:
			h.register(client)
		case client := <-h.UnregisterCh:
			h.unregister(client)
		case n := <-h.NotifyCh:
			h.deliver(n)
		}
	}
}

// register tracks the connection, replacing and closing any previous
// connection of the same user (last writer wins).
func (h *Hub) register(client Client) {
	userID := client.GetUserID()

	h.mu.Lock()
	old, existed := h.clients[userID]
	h.clients[userID] = client
	h.mu.Unlock()

	if existed && old != client {
		old.Close()
	}
	log.WithFields(log.Fields{"user_id": userID}).Info("presence: user connected")
}

// unregister is idempotent: a second disconnect of the same client, or a
// disconnect of a connection that was already replaced, changes nothing.
func (h *Hub) unregister(client Client) {
	userID := client.GetUserID()

	h.mu.Lock()
	current, ok := h.clients[userID]
	if ok && current == client {
		delete(h.clients, userID)
	}
	h.mu.Unlock()

	if ok && current == client {
		log.WithFields(log.Fields{"user_id": userID}).Info("presence: user disconnected")
	}
}

// Lookup reports whether the user currently has a tracked connection.
func (h *Hub) Lookup(userID string) (Client, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	client, ok := h.clients[userID]
	return client, ok
}

// deliver pushes the notification to the target user's connection, if any.
// An offline user is a silent no-op; a saturated send buffer drops the
// event rather than stall the hub.
func (h *Hub) deliver(n models.Notification) {
	client, ok := h.Lookup(n.TargetUserID)
	if !ok {
		return
	}

	select {
	case client.GetSendChannel() <- n:
		log.WithFields(log.Fields{
			"user_id": n.TargetUserID,
			"gig_id":  n.GigID,
		}).Info("presence: notification delivered")
	default:
		log.WithFields(log.Fields{"user_id": n.TargetUserID}).Warn("presence: send buffer full, notification dropped")
	}
}
