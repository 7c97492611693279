package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign statuses
const (
	CampaignStatusDraft    = "draft"
	CampaignStatusActive   = "active"
	CampaignStatusPaused   = "paused"
	CampaignStatusArchived = "archived"
)

// Campaign represents an advertising campaign belonging to a brand
type Campaign struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID   string     `gorm:"not null;index" json:"owner_id"`
	BrandID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"brand_id"`
	Name      string     `gorm:"not null" json:"name"`
	Status    string     `gorm:"not null;default:draft" json:"status"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Budget    float64    `json:"budget"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
