package presence

import (
	"encoding/json"

	"gigflow/backend/internal/models"

	log "github.com/sirupsen/logrus"
)

// StartPubSubListener subscribes to the Redis notification channel and
// feeds incoming events into the hub's dispatcher loop. Malformed payloads
// are logged and skipped.
func (h *Hub) StartPubSubListener() {
	go func() {
		pubsub := h.Storage.SubscribeNotifications()
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			var n models.Notification
			if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
				log.WithFields(log.Fields{"error": err}).Error("presence: bad notification payload")
				continue
			}
			h.NotifyCh <- n
		}
	}()
}
