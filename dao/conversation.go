package dao

import (
	"lassie-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConversationDAO handles conversation-related database operations
type ConversationDAO struct {
	db *gorm.DB
}

func NewConversationDAO(db *gorm.DB) *ConversationDAO {
	return &ConversationDAO{db: db}
}

// CreateConversation creates a new conversation
func (d *ConversationDAO) CreateConversation(ownerID string, assistantID uuid.UUID, metadata models.JSONMap) (*models.Conversation, error) {
	convo := &models.Conversation{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		AssistantID: assistantID,
		Metadata:    metadata,
	}
	if err := d.db.Create(convo).Error; err != nil {
		return nil, err
	}
	return convo, nil
}

// GetConversation retrieves a conversation by id scoped to its owner
func (d *ConversationDAO) GetConversation(id uuid.UUID, ownerID string) (*models.Conversation, error) {
	var convo models.Conversation
	if err := d.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&convo).Error; err != nil {
		return nil, err
	}
	return &convo, nil
}

// GetConversationsByOwner retrieves all conversations for an owner, newest first
func (d *ConversationDAO) GetConversationsByOwner(ownerID string) ([]models.Conversation, error) {
	var convos []models.Conversation
	if err := d.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&convos).Error; err != nil {
		return nil, err
	}
	return convos, nil
}

// LinkRemoteThread writes remoteThreadID into the conversation's metadata,
// preserving other keys. The update is conditional on the updated_at value
// the caller read, so two racing first-links cannot overwrite each other:
// the loser re-reads and adopts whatever remote id won.
func (d *ConversationDAO) LinkRemoteThread(convo *models.Conversation, remoteThreadID string) (string, error) {
	merged := models.JSONMap{}
	for k, v := range convo.Metadata {
		merged[k] = v
	}
	merged[models.MetaOpenAIThreadID] = remoteThreadID

	result := d.db.Model(&models.Conversation{}).
		Where("id = ? AND updated_at = ?", convo.ID, convo.UpdatedAt).
		Update("metadata", merged)
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected > 0 {
		convo.Metadata = merged
		return remoteThreadID, nil
	}

	// Lost the race. Re-read and use the winner's remote id if present.
	var current models.Conversation
	if err := d.db.Where("id = ?", convo.ID).First(&current).Error; err != nil {
		return "", err
	}
	convo.Metadata = current.Metadata
	if existing := current.RemoteThreadID(); existing != "" {
		return existing, nil
	}
	return d.LinkRemoteThread(&current, remoteThreadID)
}
