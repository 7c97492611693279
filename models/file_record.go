package models

import (
	"time"

	"github.com/google/uuid"
)

// FileRecord tracks an uploaded file living in object storage.
type FileRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID     string    `gorm:"not null;index" json:"owner_id"`
	StoragePath string    `gorm:"not null" json:"storage_path"`
	Filename    string    `gorm:"not null" json:"filename"`
	MimeType    string    `json:"mime_type"`
	CreatedAt   time.Time `json:"created_at"`
}
