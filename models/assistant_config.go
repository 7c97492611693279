package models

import (
	"time"

	"github.com/google/uuid"
)

// AssistantConfig describes one configured assistant. The OpenAI
// assistant is provisioned lazily: OpenAIAssistantID stays null until
// first use.
type AssistantConfig struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string    `gorm:"not null" json:"name"`
	OpenAIAssistantID *string   `gorm:"column:openai_assistant_id" json:"openai_assistant_id,omitempty"`
	SystemPrompt      *string   `json:"system_prompt,omitempty"`
	UserPrompt        *string   `json:"user_prompt,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
