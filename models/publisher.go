package models

import (
	"time"

	"github.com/google/uuid"
)

// Publisher represents a media publisher partner
type Publisher struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID      string    `gorm:"not null;index" json:"owner_id"`
	Name         string    `gorm:"not null" json:"name"`
	Website      string    `json:"website"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
