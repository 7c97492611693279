package logic

import (
	"lassie-backend/dao"
	"lassie-backend/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// BrandLogic handles brand-related business logic
type BrandLogic struct {
	brandDAO *dao.BrandDAO
}

func NewBrandLogic(brandDAO *dao.BrandDAO) *BrandLogic {
	return &BrandLogic{brandDAO: brandDAO}
}

// CreateBrand creates a brand for an owner
func (l *BrandLogic) CreateBrand(ownerID, name, description string) (*models.Brand, error) {
	if name == "" {
		return nil, errors.Wrap(ErrValidation, "name is required")
	}
	brand := &models.Brand{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
	}
	if err := l.brandDAO.CreateBrand(brand); err != nil {
		return nil, errors.Wrapf(ErrPersistence, "inserting brand: %v", err)
	}
	return brand, nil
}

// GetBrands lists an owner's brands
func (l *BrandLogic) GetBrands(ownerID string) ([]models.Brand, error) {
	return l.brandDAO.GetBrandsByOwner(ownerID)
}

// GetBrand retrieves one owned brand
func (l *BrandLogic) GetBrand(id uuid.UUID, ownerID string) (*models.Brand, error) {
	brand, err := l.brandDAO.GetBrand(id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "brand %s", id)
		}
		return nil, err
	}
	return brand, nil
}

// UpdateBrand updates an owned brand's mutable fields
func (l *BrandLogic) UpdateBrand(id uuid.UUID, ownerID, name, description string) (*models.Brand, error) {
	brand, err := l.GetBrand(id, ownerID)
	if err != nil {
		return nil, err
	}
	if name != "" {
		brand.Name = name
	}
	brand.Description = description
	if err := l.brandDAO.UpdateBrand(brand); err != nil {
		return nil, errors.Wrapf(ErrPersistence, "updating brand: %v", err)
	}
	return brand, nil
}

// DeleteBrand deletes an owned brand
func (l *BrandLogic) DeleteBrand(id uuid.UUID, ownerID string) error {
	if err := l.brandDAO.DeleteBrand(id, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrapf(ErrNotFound, "brand %s", id)
		}
		return errors.Wrapf(ErrPersistence, "deleting brand: %v", err)
	}
	return nil
}
