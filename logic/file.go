package logic

import (
	"context"
	"fmt"
	"path"
	"strings"

	"lassie-backend/dao"
	"lassie-backend/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// FileLogic handles file upload/listing business logic
type FileLogic struct {
	fileDAO *dao.FileRecordDAO
	store   ObjectStore
}

func NewFileLogic(fileDAO *dao.FileRecordDAO, store ObjectStore) *FileLogic {
	return &FileLogic{
		fileDAO: fileDAO,
		store:   store,
	}
}

// UploadFile stores the bytes in object storage and records them. The
// client-supplied filename is reduced to its base name so it cannot
// alter the object key layout.
func (l *FileLogic) UploadFile(ctx context.Context, ownerID, filename, contentType string, data []byte) (*models.FileRecord, error) {
	if filename == "" {
		return nil, errors.Wrap(ErrValidation, "filename is required")
	}
	if len(data) == 0 {
		return nil, errors.Wrap(ErrValidation, "file is empty")
	}
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	if name == "" || name == "." || name == ".." || name == "/" {
		return nil, errors.Wrapf(ErrValidation, "invalid filename %q", filename)
	}

	objectPath := fmt.Sprintf("%s/%s-%s", ownerID, uuid.New(), name)
	if err := l.store.Upload(ctx, objectPath, data, contentType); err != nil {
		return nil, errors.Wrapf(ErrStorage, "%v", err)
	}

	rec := &models.FileRecord{
		OwnerID:     ownerID,
		StoragePath: objectPath,
		Filename:    name,
		MimeType:    contentType,
	}
	if err := l.fileDAO.CreateFileRecord(rec); err != nil {
		return nil, errors.Wrapf(ErrPersistence, "inserting file record: %v", err)
	}
	return rec, nil
}

// GetFiles retrieves all file records for an owner
func (l *FileLogic) GetFiles(ownerID string) ([]models.FileRecord, error) {
	return l.fileDAO.GetFileRecordsByOwner(ownerID)
}
