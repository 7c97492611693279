package logic

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"lassie-backend/dao"
	"lassie-backend/models"
	"lassie-backend/pkg"

	"github.com/google/uuid"
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
	require.NoError(t, db.AutoMigrate(
		&models.Conversation{},
		&models.Message{},
		&models.AssistantConfig{},
		&models.FileRecord{},
		&models.Brand{},
		&models.Campaign{},
		&models.Publisher{},
	))
	return db
}

// fakeProvider is an in-memory AssistantProvider. Run statuses are served
// from statuses in order; the last entry repeats once exhausted.
type fakeProvider struct {
	mu sync.Mutex

	statuses         []string
	replyText        string
	replyNonText     bool
	retrieveRunDelay time.Duration // applied to the first poll only

	createThreadCalls    int
	createAssistantCalls int
	retrieveRunCalls     int
	runCallTimes         []time.Time
	lastMessageText      string
	lastMessageFileID    string
	uploadedFiles        map[string][]byte
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		statuses:      []string{"completed"},
		replyText:     "hello from lassie",
		uploadedFiles: make(map[string][]byte),
	}
}

func (p *fakeProvider) CreateThread(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.createThreadCalls++
	return fmt.Sprintf("thread_remote_%d", p.createThreadCalls), nil
}

func (p *fakeProvider) CreateAssistant(ctx context.Context, name, instructions string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.createAssistantCalls++
	return fmt.Sprintf("asst_remote_%d", p.createAssistantCalls), nil
}

func (p *fakeProvider) RetrieveAssistant(ctx context.Context, assistantID string) (string, error) {
	return assistantID, nil
}

func (p *fakeProvider) CreateMessage(ctx context.Context, threadID, content, fileID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastMessageText = content
	p.lastMessageFileID = fileID
	return nil
}

func (p *fakeProvider) CreateRun(ctx context.Context, threadID, assistantID string) (string, error) {
	return "run_1", nil
}

func (p *fakeProvider) RetrieveRun(ctx context.Context, threadID, runID string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.runCallTimes = append(p.runCallTimes, time.Now())
	idx := p.retrieveRunCalls
	p.retrieveRunCalls++
	if idx == 0 && p.retrieveRunDelay > 0 {
		time.Sleep(p.retrieveRunDelay)
	}
	if idx >= len(p.statuses) {
		idx = len(p.statuses) - 1
	}
	return p.statuses[idx], nil
}

func (p *fakeProvider) LatestMessage(ctx context.Context, threadID string) (*pkg.ProviderMessage, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return &pkg.ProviderMessage{
		ID:     "msg_remote_1",
		Role:   models.RoleAssistant,
		Text:   p.replyText,
		IsText: !p.replyNonText,
	}, nil
}

func (p *fakeProvider) UploadFile(ctx context.Context, filename string, data []byte) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.uploadedFiles[filename] = data
	return "file_remote_1", nil
}

// fakeStore is an in-memory ObjectStore.
type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte)}
}

func (s *fakeStore) Download(ctx context.Context, path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[path]
	if !ok {
		return nil, fmt.Errorf("object %s not found", path)
	}
	return data, nil
}

func (s *fakeStore) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[path] = data
	return nil
}

type chatFixture struct {
	db       *gorm.DB
	provider *fakeProvider
	store    *fakeStore
	chat     *ChatLogic

	convoDAO   *dao.ConversationDAO
	messageDAO *dao.MessageDAO
	fileDAO    *dao.FileRecordDAO

	assistantCfg *models.AssistantConfig
}

func newChatFixture(t *testing.T) *chatFixture {
	t.Helper()
	db := newTestDB(t)
	provider := newFakeProvider()
	store := newFakeStore()

	convoDAO := dao.NewConversationDAO(db)
	messageDAO := dao.NewMessageDAO(db)
	assistantDAO := dao.NewAssistantConfigDAO(db)
	fileDAO := dao.NewFileRecordDAO(db)
	assistantLogic := NewAssistantLogic(assistantDAO, provider)

	remoteID := "asst_remote_fixed"
	cfg := &models.AssistantConfig{
		Name:              "Ask Lassie",
		OpenAIAssistantID: &remoteID,
	}
	require.NoError(t, assistantDAO.CreateAssistantConfig(cfg))

	return &chatFixture{
		db:           db,
		provider:     provider,
		store:        store,
		chat:         NewChatLogic(convoDAO, messageDAO, fileDAO, assistantLogic, provider, store),
		convoDAO:     convoDAO,
		messageDAO:   messageDAO,
		fileDAO:      fileDAO,
		assistantCfg: cfg,
	}
}

func (f *chatFixture) request(message string) ChatRequest {
	return ChatRequest{
		OwnerID:     "owner-1",
		Message:     message,
		AssistantID: f.assistantCfg.ID.String(),
	}
}
