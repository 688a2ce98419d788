package models

// NotificationTypeHired is the only event type currently pushed over the
// realtime channel.
const NotificationTypeHired = "hired"

// Notification is a realtime event addressed to one user. TargetUserID is
// routing information (hub lookup, Redis fan-out payload) and is stripped
// before the event goes out on the client connection.
type Notification struct {
	TargetUserID string `json:"userId"`
	Type         string `json:"type"`
	Message      string `json:"message"`
	GigID        string `json:"gigId"`
}

// NotificationEvent is the client-facing wire format.
type NotificationEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	GigID   string `json:"gigId"`
}

// Event returns the payload actually written to the user's connection.
func (n Notification) Event() NotificationEvent {
	return NotificationEvent{Type: n.Type, Message: n.Message, GigID: n.GigID}
}
