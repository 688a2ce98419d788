package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq" // needed for pq.StringArray
	"gorm.io/gorm"
)

// User represents an account in the marketplace. The same account can post
// gigs and bid on other users' gigs; there is no separate freelancer role.
type User struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Skills       pq.StringArray `gorm:"type:text[]" json:"skills,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// BeforeCreate is a GORM hook that generates a UUID for the user
// if the ID has not been set yet.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}

// PublicUser is the projection of a User that is safe to embed in gig and
// bid responses (owner / freelancer display fields).
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public strips credentials and internal fields from the user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
