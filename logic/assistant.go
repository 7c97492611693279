package logic

import (
	"context"
	"sync"

	"lassie-backend/dao"
	"lassie-backend/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// AssistantLogic handles assistant-config business logic, in particular
// lazy provisioning of the remote assistant.
type AssistantLogic struct {
	assistantDAO *dao.AssistantConfigDAO
	provider     AssistantProvider

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewAssistantLogic(assistantDAO *dao.AssistantConfigDAO, provider AssistantProvider) *AssistantLogic {
	return &AssistantLogic{
		assistantDAO: assistantDAO,
		provider:     provider,
		locks:        make(map[uuid.UUID]*sync.Mutex),
	}
}

func (l *AssistantLogic) lockFor(id uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[id] = lock
	}
	return lock
}

// EnsureProvisioned returns the remote assistant id for a config,
// creating and persisting one on first use. Provisioning is serialized
// per config so concurrent first-uses cannot double-provision.
func (l *AssistantLogic) EnsureProvisioned(ctx context.Context, cfg *models.AssistantConfig) (string, error) {
	if cfg.OpenAIAssistantID != nil && *cfg.OpenAIAssistantID != "" {
		remoteID, err := l.provider.RetrieveAssistant(ctx, *cfg.OpenAIAssistantID)
		if err != nil {
			return "", errors.Wrapf(ErrProvider, "retrieving assistant: %v", err)
		}
		return remoteID, nil
	}

	lock := l.lockFor(cfg.ID)
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the lock: another caller may have provisioned already.
	current, err := l.assistantDAO.GetAssistantConfig(cfg.ID)
	if err != nil {
		return "", errors.Wrapf(ErrPersistence, "reloading assistant config: %v", err)
	}
	if current.OpenAIAssistantID != nil && *current.OpenAIAssistantID != "" {
		cfg.OpenAIAssistantID = current.OpenAIAssistantID
		return *current.OpenAIAssistantID, nil
	}

	instructions := ""
	if current.SystemPrompt != nil {
		instructions = *current.SystemPrompt
	}
	remoteID, err := l.provider.CreateAssistant(ctx, current.Name, instructions)
	if err != nil {
		return "", errors.Wrapf(ErrProvider, "creating assistant: %v", err)
	}
	if err := l.assistantDAO.SetOpenAIAssistantID(cfg.ID, remoteID); err != nil {
		return "", errors.Wrapf(ErrPersistence, "persisting assistant id: %v", err)
	}
	cfg.OpenAIAssistantID = &remoteID
	return remoteID, nil
}

// GetAssistantConfig retrieves an assistant config by id. An unknown id
// is a caller error; anything else is a persistence failure.
func (l *AssistantLogic) GetAssistantConfig(id uuid.UUID) (*models.AssistantConfig, error) {
	cfg, err := l.assistantDAO.GetAssistantConfig(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrValidation, "unknown assistant config %s", id)
		}
		return nil, errors.Wrapf(ErrPersistence, "loading assistant config: %v", err)
	}
	return cfg, nil
}
