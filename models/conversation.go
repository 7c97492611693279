package models

import (
	"time"

	"github.com/google/uuid"
)

// Metadata keys used on conversations and messages.
const (
	MetaOpenAIThreadID  = "openai_thread_id"
	MetaOpenAIMessageID = "openai_message_id"
	MetaOpenAIRunID     = "openai_run_id"
	MetaLocalThreadID   = "thread_id"
	MetaClientContext   = "context"
)

// Conversation groups the messages of one chat thread. Its metadata
// carries the remote OpenAI thread id once the thread has been linked.
type Conversation struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID     string    `gorm:"not null;index" json:"owner_id"`
	AssistantID uuid.UUID `gorm:"type:uuid;not null" json:"assistant_id"`
	Metadata    JSONMap   `json:"metadata"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RemoteThreadID returns the linked OpenAI thread id, or "" if unlinked.
func (c *Conversation) RemoteThreadID() string {
	return c.Metadata.GetString(MetaOpenAIThreadID)
}
