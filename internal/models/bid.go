package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bid statuses. A bid starts pending. The hire transition moves exactly one
// bid of a gig to hired and every other bid of that gig to rejected; neither
// hired nor rejected is ever left again.
const (
	BidStatusPending  = "pending"
	BidStatusHired    = "hired"
	BidStatusRejected = "rejected"
)

// Bid is a freelancer's proposal against a gig. GigID and FreelancerID are
// immutable once created. The composite unique index enforces at most one
// bid per (gig, freelancer) pair even under concurrent submissions.
type Bid struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	GigID        string    `gorm:"type:text;not null;uniqueIndex:idx_gig_freelancer" json:"gigId"`
	FreelancerID string    `gorm:"type:text;not null;uniqueIndex:idx_gig_freelancer" json:"freelancerId"`
	Message      string    `gorm:"type:text;not null" json:"message"`
	Price        float64   `gorm:"not null" json:"price"`
	Status       string    `gorm:"not null;default:'pending';index" json:"status"`
	CreatedAt    time.Time `json:"createdAt"`

	// Freelancer is preloaded for the owner's bid listing; never written through.
	Freelancer *User `gorm:"foreignKey:FreelancerID" json:"freelancer,omitempty"`
}

func (b *Bid) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.Status == "" {
		b.Status = BidStatusPending
	}
	return
}
