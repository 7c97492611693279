package logic

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"lassie-backend/dao"
	"lassie-backend/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	runPollLimit = 50

	nonTextPlaceholder = "[assistant returned non-text content]"
)

// runPollInterval is a variable so tests can shrink the wait.
var runPollInterval = time.Second

// Terminal and transient run states as reported by the provider.
const (
	runStatusCompleted      = "completed"
	runStatusFailed         = "failed"
	runStatusCancelled      = "cancelled"
	runStatusExpired        = "expired"
	runStatusRequiresAction = "requires_action"
)

// ChatLogic drives the chat flow: resolve the conversation thread, relay
// the message to the assistant provider, wait for the run, persist the
// reply.
type ChatLogic struct {
	convoDAO       *dao.ConversationDAO
	messageDAO     *dao.MessageDAO
	fileDAO        *dao.FileRecordDAO
	assistantLogic *AssistantLogic
	provider       AssistantProvider
	store          ObjectStore
}

func NewChatLogic(
	convoDAO *dao.ConversationDAO,
	messageDAO *dao.MessageDAO,
	fileDAO *dao.FileRecordDAO,
	assistantLogic *AssistantLogic,
	provider AssistantProvider,
	store ObjectStore,
) *ChatLogic {
	return &ChatLogic{
		convoDAO:       convoDAO,
		messageDAO:     messageDAO,
		fileDAO:        fileDAO,
		assistantLogic: assistantLogic,
		provider:       provider,
		store:          store,
	}
}

// ChatRequest carries one inbound chat message.
type ChatRequest struct {
	OwnerID     string
	Message     string
	ThreadID    string // optional local conversation id
	AssistantID string // optional assistant config id
	FileID      string // optional file record id
	Hidden      bool
	Context     map[string]interface{}
}

// ChatResult is the outcome of a relayed message.
type ChatResult struct {
	Reply       string
	ThreadID    uuid.UUID
	IsNewThread bool
}

// SendMessage runs the full flow for one chat request and blocks until
// the assistant's reply is available.
func (l *ChatLogic) SendMessage(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	convo, remoteThreadID, isNew, err := l.resolveThread(ctx, req)
	if err != nil {
		return nil, err
	}

	if !req.Hidden {
		var meta models.JSONMap
		if req.Context != nil {
			meta = models.JSONMap(req.Context)
		}
		if _, err := l.messageDAO.CreateMessage(convo.ID, models.RoleUser, req.Message, meta); err != nil {
			return nil, errors.Wrapf(ErrPersistence, "inserting user message: %v", err)
		}
	}

	providerFileID, err := l.relayFile(ctx, req)
	if err != nil {
		return nil, err
	}

	cfg, err := l.assistantLogic.GetAssistantConfig(convo.AssistantID)
	if err != nil {
		return nil, err
	}
	remoteAssistantID, err := l.assistantLogic.EnsureProvisioned(ctx, cfg)
	if err != nil {
		return nil, err
	}

	userPrompt := ""
	if cfg.UserPrompt != nil {
		userPrompt = *cfg.UserPrompt
	}
	text := composePrompt(userPrompt, req.Message, req.Context)

	if err := l.provider.CreateMessage(ctx, remoteThreadID, text, providerFileID); err != nil {
		return nil, errors.Wrapf(ErrProvider, "%v", err)
	}
	runID, err := l.provider.CreateRun(ctx, remoteThreadID, remoteAssistantID)
	if err != nil {
		return nil, errors.Wrapf(ErrProvider, "%v", err)
	}

	if err := l.waitForRun(ctx, remoteThreadID, runID); err != nil {
		return nil, err
	}

	reply, providerMessageID, err := l.fetchReply(ctx, remoteThreadID)
	if err != nil {
		return nil, err
	}

	// The reply is already determined; a persist failure here must not
	// alter the caller-visible outcome.
	meta := models.JSONMap{
		models.MetaOpenAIMessageID: providerMessageID,
		models.MetaOpenAIRunID:     runID,
	}
	if isNew {
		meta[models.MetaLocalThreadID] = convo.ID.String()
		if req.Context != nil {
			meta[models.MetaClientContext] = req.Context
		}
	}
	if _, err := l.messageDAO.CreateMessage(convo.ID, models.RoleAssistant, reply, meta); err != nil {
		log.Printf("failed to persist assistant reply for conversation %s: %v", convo.ID, err)
	}

	return &ChatResult{Reply: reply, ThreadID: convo.ID, IsNewThread: isNew}, nil
}

// resolveThread loads or creates the conversation and guarantees it is
// linked to a remote thread.
func (l *ChatLogic) resolveThread(ctx context.Context, req ChatRequest) (*models.Conversation, string, bool, error) {
	if req.ThreadID != "" {
		convoID, err := uuid.Parse(req.ThreadID)
		if err != nil {
			// An unparseable id cannot name any thread the caller owns.
			return nil, "", false, errors.Wrapf(ErrNotFound, "thread %q", req.ThreadID)
		}
		convo, err := l.convoDAO.GetConversation(convoID, req.OwnerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, "", false, errors.Wrapf(ErrNotFound, "thread %s", convoID)
			}
			return nil, "", false, errors.Wrapf(ErrPersistence, "loading thread: %v", err)
		}
		remoteID := convo.RemoteThreadID()
		if remoteID == "" {
			created, err := l.provider.CreateThread(ctx)
			if err != nil {
				return nil, "", false, errors.Wrapf(ErrProvider, "%v", err)
			}
			remoteID, err = l.convoDAO.LinkRemoteThread(convo, created)
			if err != nil {
				return nil, "", false, errors.Wrapf(ErrPersistence, "linking remote thread: %v", err)
			}
		}
		return convo, remoteID, false, nil
	}

	assistantID, err := uuid.Parse(req.AssistantID)
	if err != nil {
		return nil, "", false, errors.Wrapf(ErrValidation, "invalid assistant id %q", req.AssistantID)
	}
	remoteID, err := l.provider.CreateThread(ctx)
	if err != nil {
		return nil, "", false, errors.Wrapf(ErrProvider, "%v", err)
	}
	convo, err := l.convoDAO.CreateConversation(req.OwnerID, assistantID, models.JSONMap{
		models.MetaOpenAIThreadID: remoteID,
	})
	if err != nil {
		return nil, "", false, errors.Wrapf(ErrPersistence, "creating conversation: %v", err)
	}
	return convo, remoteID, true, nil
}

// relayFile downloads a referenced upload from object storage and
// re-uploads it to the provider. There is no partial-success path: any
// failure aborts the request.
func (l *ChatLogic) relayFile(ctx context.Context, req ChatRequest) (string, error) {
	if req.FileID == "" {
		return "", nil
	}
	fileID, err := uuid.Parse(req.FileID)
	if err != nil {
		return "", errors.Wrapf(ErrFileReference, "invalid file id %q", req.FileID)
	}
	rec, err := l.fileDAO.GetFileRecord(fileID, req.OwnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errors.Wrapf(ErrFileReference, "file %s", fileID)
		}
		return "", errors.Wrapf(ErrPersistence, "loading file record: %v", err)
	}
	if rec.StoragePath == "" {
		return "", errors.Wrapf(ErrFileReference, "file %s has no storage path", fileID)
	}
	data, err := l.store.Download(ctx, rec.StoragePath)
	if err != nil {
		return "", errors.Wrapf(ErrStorage, "%v", err)
	}
	providerFileID, err := l.provider.UploadFile(ctx, rec.Filename, data)
	if err != nil {
		return "", errors.Wrapf(ErrProvider, "%v", err)
	}
	return providerFileID, nil
}

// waitForRun polls run status once per poll interval, up to runPollLimit
// polls. The wait aborts early if ctx is cancelled.
func (l *ChatLogic) waitForRun(ctx context.Context, remoteThreadID, runID string) error {
	for attempt := 0; attempt < runPollLimit; attempt++ {
		status, err := l.provider.RetrieveRun(ctx, remoteThreadID, runID)
		if err != nil {
			return errors.Wrapf(ErrProvider, "%v", err)
		}
		switch status {
		case runStatusCompleted:
			return nil
		case runStatusFailed, runStatusCancelled, runStatusExpired:
			return &RunFailedError{Status: status}
		case runStatusRequiresAction:
			return errors.WithStack(ErrUnsupportedRunState)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(runPollInterval):
		}
	}
	return errors.Wrapf(ErrPollTimeout, "run %s still pending after %d polls", runID, runPollLimit)
}

// fetchReply reads the newest message on the remote thread. Non-text
// content degrades to a fixed placeholder instead of failing, so the
// already-determined response can still be delivered.
func (l *ChatLogic) fetchReply(ctx context.Context, remoteThreadID string) (string, string, error) {
	msg, err := l.provider.LatestMessage(ctx, remoteThreadID)
	if err != nil {
		return "", "", errors.Wrapf(ErrProvider, "%v", err)
	}
	if !msg.IsText {
		return nonTextPlaceholder, msg.ID, nil
	}
	return msg.Text, msg.ID, nil
}

// composePrompt builds the outgoing text: optional user-prompt prefix,
// the message, optional JSON context suffix.
func composePrompt(userPrompt, message string, context map[string]interface{}) string {
	text := message
	if userPrompt != "" {
		text = userPrompt + "\n\n" + text
	}
	if context != nil {
		encoded, err := json.Marshal(context)
		if err != nil {
			log.Printf("failed to encode chat context: %v", err)
		} else {
			text = text + "\n\nCONTEXT:" + string(encoded)
		}
	}
	return text
}
