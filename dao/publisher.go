package dao

import (
	"lassie-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PublisherDAO handles publisher-related database operations
type PublisherDAO struct {
	db *gorm.DB
}

func NewPublisherDAO(db *gorm.DB) *PublisherDAO {
	return &PublisherDAO{db: db}
}

// CreatePublisher creates a new publisher
func (d *PublisherDAO) CreatePublisher(publisher *models.Publisher) error {
	if publisher.ID == uuid.Nil {
		publisher.ID = uuid.New()
	}
	return d.db.Create(publisher).Error
}

// GetPublisher retrieves a publisher by id scoped to its owner
func (d *PublisherDAO) GetPublisher(id uuid.UUID, ownerID string) (*models.Publisher, error) {
	var publisher models.Publisher
	if err := d.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&publisher).Error; err != nil {
		return nil, err
	}
	return &publisher, nil
}

// GetPublishersByOwner retrieves all publishers for an owner
func (d *PublisherDAO) GetPublishersByOwner(ownerID string) ([]models.Publisher, error) {
	var publishers []models.Publisher
	if err := d.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&publishers).Error; err != nil {
		return nil, err
	}
	return publishers, nil
}

// UpdatePublisher saves mutable publisher fields
func (d *PublisherDAO) UpdatePublisher(publisher *models.Publisher) error {
	return d.db.Model(publisher).
		Where("owner_id = ?", publisher.OwnerID).
		Updates(map[string]interface{}{
			"name":          publisher.Name,
			"website":       publisher.Website,
			"contact_email": publisher.ContactEmail,
		}).Error
}

// DeletePublisher deletes a publisher scoped to its owner
func (d *PublisherDAO) DeletePublisher(id uuid.UUID, ownerID string) error {
	result := d.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Publisher{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
