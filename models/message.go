package models

import (
	"time"

	"github.com/google/uuid"
)

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a message in a conversation. Messages are immutable
// once created; ordering is by created_at.
type Message struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index" json:"conversation_id"`
	Role           string    `gorm:"not null" json:"role"`
	Content        string    `gorm:"not null" json:"content"`
	Completed      bool      `gorm:"default:false" json:"completed"`
	Metadata       JSONMap   `json:"metadata,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
