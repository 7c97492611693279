package logic

import (
	"time"

	"lassie-backend/dao"
	"lassie-backend/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CampaignLogic handles campaign-related business logic
type CampaignLogic struct {
	campaignDAO *dao.CampaignDAO
	brandDAO    *dao.BrandDAO
}

func NewCampaignLogic(campaignDAO *dao.CampaignDAO, brandDAO *dao.BrandDAO) *CampaignLogic {
	return &CampaignLogic{
		campaignDAO: campaignDAO,
		brandDAO:    brandDAO,
	}
}

// CampaignInput carries the mutable campaign fields
type CampaignInput struct {
	Name      string
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
	Budget    float64
}

// CreateCampaign creates a campaign under a brand the owner controls
func (l *CampaignLogic) CreateCampaign(ownerID string, brandID uuid.UUID, input CampaignInput) (*models.Campaign, error) {
	if input.Name == "" {
		return nil, errors.Wrap(ErrValidation, "name is required")
	}
	if _, err := l.brandDAO.GetBrand(brandID, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "brand %s", brandID)
		}
		return nil, err
	}
	campaign := &models.Campaign{
		OwnerID:   ownerID,
		BrandID:   brandID,
		Name:      input.Name,
		Status:    input.Status,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Budget:    input.Budget,
	}
	if err := l.campaignDAO.CreateCampaign(campaign); err != nil {
		return nil, errors.Wrapf(ErrPersistence, "inserting campaign: %v", err)
	}
	return campaign, nil
}

// GetCampaigns lists an owner's campaigns, optionally filtered by brand
func (l *CampaignLogic) GetCampaigns(ownerID string, brandID *uuid.UUID) ([]models.Campaign, error) {
	return l.campaignDAO.GetCampaignsByOwner(ownerID, brandID)
}

// GetCampaign retrieves one owned campaign
func (l *CampaignLogic) GetCampaign(id uuid.UUID, ownerID string) (*models.Campaign, error) {
	campaign, err := l.campaignDAO.GetCampaign(id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "campaign %s", id)
		}
		return nil, err
	}
	return campaign, nil
}

// UpdateCampaign updates an owned campaign's mutable fields
func (l *CampaignLogic) UpdateCampaign(id uuid.UUID, ownerID string, input CampaignInput) (*models.Campaign, error) {
	campaign, err := l.GetCampaign(id, ownerID)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		campaign.Name = input.Name
	}
	if input.Status != "" {
		campaign.Status = input.Status
	}
	campaign.StartDate = input.StartDate
	campaign.EndDate = input.EndDate
	campaign.Budget = input.Budget
	if err := l.campaignDAO.UpdateCampaign(campaign); err != nil {
		return nil, errors.Wrapf(ErrPersistence, "updating campaign: %v", err)
	}
	return campaign, nil
}

// DeleteCampaign deletes an owned campaign
func (l *CampaignLogic) DeleteCampaign(id uuid.UUID, ownerID string) error {
	if err := l.campaignDAO.DeleteCampaign(id, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrapf(ErrNotFound, "campaign %s", id)
		}
		return errors.Wrapf(ErrPersistence, "deleting campaign: %v", err)
	}
	return nil
}
