package dao

import (
	"lassie-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileRecordDAO handles file-record database operations
type FileRecordDAO struct {
	db *gorm.DB
}

func NewFileRecordDAO(db *gorm.DB) *FileRecordDAO {
	return &FileRecordDAO{db: db}
}

// CreateFileRecord creates a new file record
func (d *FileRecordDAO) CreateFileRecord(rec *models.FileRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	return d.db.Create(rec).Error
}

// GetFileRecord retrieves a file record by id scoped to its owner
func (d *FileRecordDAO) GetFileRecord(id uuid.UUID, ownerID string) (*models.FileRecord, error) {
	var rec models.FileRecord
	if err := d.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetFileRecordsByOwner retrieves all file records for an owner, newest first
func (d *FileRecordDAO) GetFileRecordsByOwner(ownerID string) ([]models.FileRecord, error) {
	var recs []models.FileRecord
	if err := d.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
