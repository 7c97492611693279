package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lassie-backend/config"
	"lassie-backend/dao"
	"lassie-backend/logic"
	"lassie-backend/middleware"
	"lassie-backend/models"
	"lassie-backend/pkg"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "controller-test-secret"

// stubProvider completes every run on the first poll.
type stubProvider struct {
	threads int
}

func (p *stubProvider) CreateThread(ctx context.Context) (string, error) {
	p.threads++
	return fmt.Sprintf("thread_remote_%d", p.threads), nil
}

func (p *stubProvider) CreateAssistant(ctx context.Context, name, instructions string) (string, error) {
	return "asst_remote_1", nil
}

func (p *stubProvider) RetrieveAssistant(ctx context.Context, assistantID string) (string, error) {
	return assistantID, nil
}

func (p *stubProvider) CreateMessage(ctx context.Context, threadID, content, fileID string) error {
	return nil
}

func (p *stubProvider) CreateRun(ctx context.Context, threadID, assistantID string) (string, error) {
	return "run_1", nil
}

func (p *stubProvider) RetrieveRun(ctx context.Context, threadID, runID string) (string, error) {
	return "completed", nil
}

func (p *stubProvider) LatestMessage(ctx context.Context, threadID string) (*pkg.ProviderMessage, error) {
	return &pkg.ProviderMessage{ID: "msg_remote_1", Role: models.RoleAssistant, Text: "woof", IsText: true}, nil
}

func (p *stubProvider) UploadFile(ctx context.Context, filename string, data []byte) (string, error) {
	return "file_remote_1", nil
}

type stubStore struct{}

func (stubStore) Download(ctx context.Context, path string) ([]byte, error) { return []byte("x"), nil }
func (stubStore) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	return nil
}

type chatTestEnv struct {
	router      *gin.Engine
	assistantID string
	convoDAO    *dao.ConversationDAO
	messageDAO  *dao.MessageDAO
}

func newChatTestEnv(t *testing.T) *chatTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.GlobalConfig.Auth.Secret = testSecret
	config.GlobalConfig.Chat.DefaultAssistantID = ""

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Conversation{},
		&models.Message{},
		&models.AssistantConfig{},
		&models.FileRecord{},
	))

	convoDAO := dao.NewConversationDAO(db)
	messageDAO := dao.NewMessageDAO(db)
	assistantDAO := dao.NewAssistantConfigDAO(db)
	fileDAO := dao.NewFileRecordDAO(db)

	remoteID := "asst_remote_fixed"
	cfg := &models.AssistantConfig{Name: "Ask Lassie", OpenAIAssistantID: &remoteID}
	require.NoError(t, assistantDAO.CreateAssistantConfig(cfg))

	provider := &stubProvider{}
	assistantLogic := logic.NewAssistantLogic(assistantDAO, provider)
	chatLogic := logic.NewChatLogic(convoDAO, messageDAO, fileDAO, assistantLogic, provider, stubStore{})
	chatCtrl := NewChatController(chatLogic)

	r := gin.New()
	r.POST("/chat/stream", middleware.Auth, chatCtrl.Stream)

	return &chatTestEnv{
		router:      r,
		assistantID: cfg.ID.String(),
		convoDAO:    convoDAO,
		messageDAO:  messageDAO,
	}
}

func (e *chatTestEnv) post(t *testing.T, owner string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/chat/stream", bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": owner,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+signed)

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestChatStreamNewThread(t *testing.T) {
	e := newChatTestEnv(t)

	w := e.post(t, "owner-1", map[string]interface{}{
		"message":     "hi lassie",
		"assistantId": e.assistantID,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "woof", w.Body.String())

	threadID := w.Header().Get("X-Thread-ID")
	require.NotEmpty(t, threadID)
	convoID, err := uuid.Parse(threadID)
	require.NoError(t, err)

	convo, err := e.convoDAO.GetConversation(convoID, "owner-1")
	require.NoError(t, err)
	assert.NotEmpty(t, convo.RemoteThreadID())
}

func TestChatStreamReuseThread(t *testing.T) {
	e := newChatTestEnv(t)

	first := e.post(t, "owner-1", map[string]interface{}{
		"message":     "hi",
		"assistantId": e.assistantID,
	})
	require.Equal(t, http.StatusOK, first.Code)
	threadID := first.Header().Get("X-Thread-ID")
	require.NotEmpty(t, threadID)

	second := e.post(t, "owner-1", map[string]interface{}{
		"message":   "again",
		"thread_id": threadID,
	})
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Empty(t, second.Header().Get("X-Thread-ID"))

	convos, err := e.convoDAO.GetConversationsByOwner("owner-1")
	require.NoError(t, err)
	assert.Len(t, convos, 1)
}

func TestChatStreamMissingMessage(t *testing.T) {
	e := newChatTestEnv(t)

	w := e.post(t, "owner-1", map[string]interface{}{
		"assistantId": e.assistantID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
}

func TestChatStreamForeignThread(t *testing.T) {
	e := newChatTestEnv(t)

	first := e.post(t, "owner-1", map[string]interface{}{
		"message":     "hi",
		"assistantId": e.assistantID,
	})
	require.Equal(t, http.StatusOK, first.Code)
	threadID := first.Header().Get("X-Thread-ID")

	w := e.post(t, "intruder", map[string]interface{}{
		"message":   "gimme",
		"thread_id": threadID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatStreamUnauthorized(t *testing.T) {
	e := newChatTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/chat/stream", bytes.NewReader([]byte(`{"message":"hi"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
