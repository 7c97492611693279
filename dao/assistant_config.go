package dao

import (
	"lassie-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssistantConfigDAO handles assistant-config database operations
type AssistantConfigDAO struct {
	db *gorm.DB
}

func NewAssistantConfigDAO(db *gorm.DB) *AssistantConfigDAO {
	return &AssistantConfigDAO{db: db}
}

// CreateAssistantConfig creates a new assistant config
func (d *AssistantConfigDAO) CreateAssistantConfig(cfg *models.AssistantConfig) error {
	if cfg.ID == uuid.Nil {
		cfg.ID = uuid.New()
	}
	return d.db.Create(cfg).Error
}

// GetAssistantConfig retrieves an assistant config by id
func (d *AssistantConfigDAO) GetAssistantConfig(id uuid.UUID) (*models.AssistantConfig, error) {
	var cfg models.AssistantConfig
	if err := d.db.Where("id = ?", id).First(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetOpenAIAssistantID persists the remote assistant id onto a config
func (d *AssistantConfigDAO) SetOpenAIAssistantID(id uuid.UUID, remoteID string) error {
	return d.db.Model(&models.AssistantConfig{}).
		Where("id = ?", id).
		Update("openai_assistant_id", remoteID).Error
}
