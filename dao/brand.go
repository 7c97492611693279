package dao

import (
	"lassie-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BrandDAO handles brand-related database operations
type BrandDAO struct {
	db *gorm.DB
}

func NewBrandDAO(db *gorm.DB) *BrandDAO {
	return &BrandDAO{db: db}
}

// CreateBrand creates a new brand
func (d *BrandDAO) CreateBrand(brand *models.Brand) error {
	if brand.ID == uuid.Nil {
		brand.ID = uuid.New()
	}
	return d.db.Create(brand).Error
}

// GetBrand retrieves a brand by id scoped to its owner
func (d *BrandDAO) GetBrand(id uuid.UUID, ownerID string) (*models.Brand, error) {
	var brand models.Brand
	if err := d.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

// GetBrandsByOwner retrieves all brands for an owner
func (d *BrandDAO) GetBrandsByOwner(ownerID string) ([]models.Brand, error) {
	var brands []models.Brand
	if err := d.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// UpdateBrand saves mutable brand fields
func (d *BrandDAO) UpdateBrand(brand *models.Brand) error {
	return d.db.Model(brand).
		Where("owner_id = ?", brand.OwnerID).
		Updates(map[string]interface{}{
			"name":        brand.Name,
			"description": brand.Description,
		}).Error
}

// DeleteBrand deletes a brand scoped to its owner
func (d *BrandDAO) DeleteBrand(id uuid.UUID, ownerID string) error {
	result := d.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Brand{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
