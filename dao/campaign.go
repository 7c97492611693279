package dao

import (
	"lassie-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CampaignDAO handles campaign-related database operations
type CampaignDAO struct {
	db *gorm.DB
}

func NewCampaignDAO(db *gorm.DB) *CampaignDAO {
	return &CampaignDAO{db: db}
}

// CreateCampaign creates a new campaign
func (d *CampaignDAO) CreateCampaign(campaign *models.Campaign) error {
	if campaign.ID == uuid.Nil {
		campaign.ID = uuid.New()
	}
	if campaign.Status == "" {
		campaign.Status = models.CampaignStatusDraft
	}
	return d.db.Create(campaign).Error
}

// GetCampaign retrieves a campaign by id scoped to its owner
func (d *CampaignDAO) GetCampaign(id uuid.UUID, ownerID string) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := d.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&campaign).Error; err != nil {
		return nil, err
	}
	return &campaign, nil
}

// GetCampaignsByOwner retrieves all campaigns for an owner, optionally
// filtered by brand
func (d *CampaignDAO) GetCampaignsByOwner(ownerID string, brandID *uuid.UUID) ([]models.Campaign, error) {
	query := d.db.Where("owner_id = ?", ownerID)
	if brandID != nil {
		query = query.Where("brand_id = ?", *brandID)
	}
	var campaigns []models.Campaign
	if err := query.Order("created_at DESC").Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

// UpdateCampaign saves mutable campaign fields
func (d *CampaignDAO) UpdateCampaign(campaign *models.Campaign) error {
	return d.db.Model(campaign).
		Where("owner_id = ?", campaign.OwnerID).
		Updates(map[string]interface{}{
			"name":       campaign.Name,
			"status":     campaign.Status,
			"start_date": campaign.StartDate,
			"end_date":   campaign.EndDate,
			"budget":     campaign.Budget,
		}).Error
}

// DeleteCampaign deletes a campaign scoped to its owner
func (d *CampaignDAO) DeleteCampaign(id uuid.UUID, ownerID string) error {
	result := d.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Campaign{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
