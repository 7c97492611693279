package logic

import (
	"lassie-backend/dao"
	"lassie-backend/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PublisherLogic handles publisher-related business logic
type PublisherLogic struct {
	publisherDAO *dao.PublisherDAO
}

func NewPublisherLogic(publisherDAO *dao.PublisherDAO) *PublisherLogic {
	return &PublisherLogic{publisherDAO: publisherDAO}
}

// CreatePublisher creates a publisher for an owner
func (l *PublisherLogic) CreatePublisher(ownerID, name, website, contactEmail string) (*models.Publisher, error) {
	if name == "" {
		return nil, errors.Wrap(ErrValidation, "name is required")
	}
	publisher := &models.Publisher{
		OwnerID:      ownerID,
		Name:         name,
		Website:      website,
		ContactEmail: contactEmail,
	}
	if err := l.publisherDAO.CreatePublisher(publisher); err != nil {
		return nil, errors.Wrapf(ErrPersistence, "inserting publisher: %v", err)
	}
	return publisher, nil
}

// GetPublishers lists an owner's publishers
func (l *PublisherLogic) GetPublishers(ownerID string) ([]models.Publisher, error) {
	return l.publisherDAO.GetPublishersByOwner(ownerID)
}

// GetPublisher retrieves one owned publisher
func (l *PublisherLogic) GetPublisher(id uuid.UUID, ownerID string) (*models.Publisher, error) {
	publisher, err := l.publisherDAO.GetPublisher(id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "publisher %s", id)
		}
		return nil, err
	}
	return publisher, nil
}

// UpdatePublisher updates an owned publisher's mutable fields
func (l *PublisherLogic) UpdatePublisher(id uuid.UUID, ownerID, name, website, contactEmail string) (*models.Publisher, error) {
	publisher, err := l.GetPublisher(id, ownerID)
	if err != nil {
		return nil, err
	}
	if name != "" {
		publisher.Name = name
	}
	publisher.Website = website
	publisher.ContactEmail = contactEmail
	if err := l.publisherDAO.UpdatePublisher(publisher); err != nil {
		return nil, errors.Wrapf(ErrPersistence, "updating publisher: %v", err)
	}
	return publisher, nil
}

// DeletePublisher deletes an owned publisher
func (l *PublisherLogic) DeletePublisher(id uuid.UUID, ownerID string) error {
	if err := l.publisherDAO.DeletePublisher(id, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrapf(ErrNotFound, "publisher %s", id)
		}
		return errors.Wrapf(ErrPersistence, "deleting publisher: %v", err)
	}
	return nil
}
