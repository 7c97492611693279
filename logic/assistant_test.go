package logic

import (
	"context"
	"sync"
	"testing"

	"lassie-backend/dao"
	"lassie-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureProvisionedLazily(t *testing.T) {
	db := newTestDB(t)
	provider := newFakeProvider()
	assistantDAO := dao.NewAssistantConfigDAO(db)
	l := NewAssistantLogic(assistantDAO, provider)

	prompt := "You help with ad campaigns."
	cfg := &models.AssistantConfig{Name: "Ask Lassie", SystemPrompt: &prompt}
	require.NoError(t, assistantDAO.CreateAssistantConfig(cfg))

	remoteID, err := l.EnsureProvisioned(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "asst_remote_1", remoteID)
	assert.Equal(t, 1, provider.createAssistantCalls)

	// The remote id must be persisted for subsequent processes.
	reloaded, err := assistantDAO.GetAssistantConfig(cfg.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.OpenAIAssistantID)
	assert.Equal(t, "asst_remote_1", *reloaded.OpenAIAssistantID)

	// A second call retrieves rather than re-provisions.
	remoteID, err = l.EnsureProvisioned(context.Background(), reloaded)
	require.NoError(t, err)
	assert.Equal(t, "asst_remote_1", remoteID)
	assert.Equal(t, 1, provider.createAssistantCalls)
}

func TestGetAssistantConfigErrors(t *testing.T) {
	db := newTestDB(t)
	l := NewAssistantLogic(dao.NewAssistantConfigDAO(db), newFakeProvider())

	// Unknown id is the caller's mistake.
	_, err := l.GetAssistantConfig(uuid.New())
	assert.ErrorIs(t, err, ErrValidation)

	// A dead connection is not.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = l.GetAssistantConfig(uuid.New())
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestEnsureProvisionedConcurrent(t *testing.T) {
	db := newTestDB(t)
	provider := newFakeProvider()
	assistantDAO := dao.NewAssistantConfigDAO(db)
	l := NewAssistantLogic(assistantDAO, provider)

	cfg := &models.AssistantConfig{Name: "Ask Lassie"}
	require.NoError(t, assistantDAO.CreateAssistantConfig(cfg))

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			fresh, err := assistantDAO.GetAssistantConfig(cfg.ID)
			if err != nil {
				return
			}
			remoteID, err := l.EnsureProvisioned(context.Background(), fresh)
			if err == nil {
				results[i] = remoteID
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, provider.createAssistantCalls)
	for _, remoteID := range results {
		assert.Equal(t, "asst_remote_1", remoteID)
	}
}
