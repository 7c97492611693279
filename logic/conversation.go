package logic

import (
	"lassie-backend/dao"
	"lassie-backend/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ConversationLogic handles conversation-related business logic
type ConversationLogic struct {
	convoDAO   *dao.ConversationDAO
	messageDAO *dao.MessageDAO
}

func NewConversationLogic(convoDAO *dao.ConversationDAO, messageDAO *dao.MessageDAO) *ConversationLogic {
	return &ConversationLogic{
		convoDAO:   convoDAO,
		messageDAO: messageDAO,
	}
}

// GetConversations retrieves all conversations for an owner
func (l *ConversationLogic) GetConversations(ownerID string) ([]models.Conversation, error) {
	return l.convoDAO.GetConversationsByOwner(ownerID)
}

// GetConversationMessages retrieves the ordered history of a conversation
// the owner can see
func (l *ConversationLogic) GetConversationMessages(conversationID uuid.UUID, ownerID string) ([]models.Message, error) {
	if _, err := l.convoDAO.GetConversation(conversationID, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "thread %s", conversationID)
		}
		return nil, errors.Wrapf(ErrPersistence, "loading thread: %v", err)
	}
	return l.messageDAO.GetMessagesByConversationID(conversationID)
}
