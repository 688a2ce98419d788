package handler

import (
	"gigflow/backend/internal/hire"
	"gigflow/backend/internal/presence"
	"gigflow/backend/internal/storage"
)

// Handler bundles the collaborators the HTTP layer needs. Everything is
// injected; handlers hold no global state.
type Handler struct {
	Store storage.Storage
	Hire  *hire.Coordinator
	Hub   *presence.Hub
}

func NewHandler(store storage.Storage, coordinator *hire.Coordinator, hub *presence.Hub) *Handler {
	return &Handler{Store: store, Hire: coordinator, Hub: hub}
}
