package presence

import (
	"fmt"

	"gigflow/backend/internal/models"

	log "github.com/sirupsen/logrus"
)

// Publisher is the fan-out side of the storage layer the dispatcher needs.
type Publisher interface {
	PublishNotification(n models.Notification) error
}

// Dispatcher turns a committed hire into a realtime event. It publishes the
// event through Redis so the instance holding the freelancer's connection
// receives it; if publishing fails the event is handed to the local hub
// directly. Either way a delivery failure is logged and goes nowhere else:
// the hire has already committed.
type Dispatcher struct {
	Hub   *Hub
	Store Publisher
}

func NewDispatcher(hub *Hub, store Publisher) *Dispatcher {
	return &Dispatcher{Hub: hub, Store: store}
}

// NotifyHired pushes the hired event toward the freelancer. If the user is
// not connected anywhere, the event is lost; there is no queueing or retry.
func (d *Dispatcher) NotifyHired(freelancerID, gigID, gigTitle string) {
	n := models.Notification{
		TargetUserID: freelancerID,
		Type:         models.NotificationTypeHired,
		Message:      fmt.Sprintf("Congratulations! You have been hired for the project: %q", gigTitle),
		GigID:        gigID,
	}

	if d.Store != nil {
		err := d.Store.PublishNotification(n)
		if err == nil {
			return
		}
		log.WithFields(log.Fields{"user_id": freelancerID, "error": err}).Warn("dispatcher: publish failed, delivering locally")
	}

	// Local fallback, non-blocking: NotifyCh is buffered and the hub drains it.
	select {
	case d.Hub.NotifyCh <- n:
	default:
		log.WithFields(log.Fields{"user_id": freelancerID}).Warn("dispatcher: hub busy, notification dropped")
	}
}
