package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gig lifecycle statuses. A gig starts open and becomes assigned exactly once,
// through the hire transition. Assigned is terminal.
const (
	GigStatusOpen     = "open"
	GigStatusAssigned = "assigned"
)

// Gig represents a posted job. OwnerID is set at creation and never changes.
type Gig struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	OwnerID     string    `gorm:"type:text;not null;index" json:"ownerId"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Budget      float64   `gorm:"not null" json:"budget"`
	Status      string    `gorm:"not null;default:'open';index" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`

	// Owner is preloaded for display only; the foreign key is OwnerID.
	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (g *Gig) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.Status == "" {
		g.Status = GigStatusOpen
	}
	return
}

// IsOpen reports whether the gig still accepts bids and can be hired on.
func (g *Gig) IsOpen() bool {
	return g.Status == GigStatusOpen
}
