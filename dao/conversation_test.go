package dao

import (
	"fmt"
	"testing"

	"lassie-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Conversation{}, &models.Message{}))
	return db
}

func TestLinkRemoteThreadMergesMetadata(t *testing.T) {
	db := newTestDB(t)
	d := NewConversationDAO(db)

	convo, err := d.CreateConversation("owner-1", uuid.New(), models.JSONMap{"title": "Q3 planning"})
	require.NoError(t, err)

	remoteID, err := d.LinkRemoteThread(convo, "thread_abc")
	require.NoError(t, err)
	assert.Equal(t, "thread_abc", remoteID)

	reloaded, err := d.GetConversation(convo.ID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "thread_abc", reloaded.RemoteThreadID())
	assert.Equal(t, "Q3 planning", reloaded.Metadata.GetString("title"))
}

func TestLinkRemoteThreadNilMetadata(t *testing.T) {
	db := newTestDB(t)
	d := NewConversationDAO(db)

	convo, err := d.CreateConversation("owner-1", uuid.New(), nil)
	require.NoError(t, err)

	remoteID, err := d.LinkRemoteThread(convo, "thread_abc")
	require.NoError(t, err)
	assert.Equal(t, "thread_abc", remoteID)
}

func TestLinkRemoteThreadLostRaceAdoptsWinner(t *testing.T) {
	db := newTestDB(t)
	d := NewConversationDAO(db)

	convo, err := d.CreateConversation("owner-1", uuid.New(), nil)
	require.NoError(t, err)

	// Simulate a concurrent writer linking first with a stale copy left
	// in our hands.
	stale := *convo
	winner, err := d.GetConversation(convo.ID, "owner-1")
	require.NoError(t, err)
	_, err = d.LinkRemoteThread(winner, "thread_winner")
	require.NoError(t, err)

	remoteID, err := d.LinkRemoteThread(&stale, "thread_loser")
	require.NoError(t, err)
	assert.Equal(t, "thread_winner", remoteID)

	reloaded, err := d.GetConversation(convo.ID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "thread_winner", reloaded.RemoteThreadID())
}

func TestGetConversationScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	d := NewConversationDAO(db)

	convo, err := d.CreateConversation("owner-1", uuid.New(), nil)
	require.NoError(t, err)

	_, err = d.GetConversation(convo.ID, "owner-2")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMessagesOrderedByCreation(t *testing.T) {
	db := newTestDB(t)
	convoDAO := NewConversationDAO(db)
	messageDAO := NewMessageDAO(db)

	convo, err := convoDAO.CreateConversation("owner-1", uuid.New(), nil)
	require.NoError(t, err)

	for _, content := range []string{"one", "two", "three"} {
		_, err := messageDAO.CreateMessage(convo.ID, models.RoleUser, content, nil)
		require.NoError(t, err)
	}

	messages, err := messageDAO.GetMessagesByConversationID(convo.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "one", messages[0].Content)
	assert.Equal(t, "two", messages[1].Content)
	assert.Equal(t, "three", messages[2].Content)
}
