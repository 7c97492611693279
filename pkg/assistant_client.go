package pkg

import (
	"context"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

// ProviderMessage is the slice of an OpenAI thread message the chat flow
// cares about. IsText is false when the first content block is not text.
type ProviderMessage struct {
	ID     string
	Role   string
	Text   string
	IsText bool
}

// AssistantClient wraps the OpenAI Assistants API.
type AssistantClient struct {
	client *openai.Client
	model  string
}

// NewAssistantClient creates an Assistants API client using the given
// model for newly provisioned assistants.
func NewAssistantClient(apiKey, model string) *AssistantClient {
	return &AssistantClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// CreateThread creates a new remote thread and returns its id
func (c *AssistantClient) CreateThread(ctx context.Context) (string, error) {
	thread, err := c.client.CreateThread(ctx, openai.ThreadRequest{})
	if err != nil {
		return "", errors.Wrap(err, "creating thread")
	}
	return thread.ID, nil
}

// CreateAssistant provisions a remote assistant and returns its id
func (c *AssistantClient) CreateAssistant(ctx context.Context, name, instructions string) (string, error) {
	req := openai.AssistantRequest{
		Model: c.model,
		Name:  &name,
		Tools: []openai.AssistantTool{
			{Type: openai.AssistantToolTypeCodeInterpreter},
		},
	}
	if instructions != "" {
		req.Instructions = &instructions
	}
	assistant, err := c.client.CreateAssistant(ctx, req)
	if err != nil {
		return "", errors.Wrap(err, "creating assistant")
	}
	return assistant.ID, nil
}

// RetrieveAssistant verifies a remote assistant exists and returns its id
func (c *AssistantClient) RetrieveAssistant(ctx context.Context, assistantID string) (string, error) {
	assistant, err := c.client.RetrieveAssistant(ctx, assistantID)
	if err != nil {
		return "", errors.Wrap(err, "retrieving assistant")
	}
	return assistant.ID, nil
}

// CreateMessage posts a user message on a remote thread. A non-empty
// fileID is attached with the code-interpreter tool enabled.
func (c *AssistantClient) CreateMessage(ctx context.Context, threadID, content, fileID string) error {
	req := openai.MessageRequest{
		Role:    openai.ChatMessageRoleUser,
		Content: content,
	}
	if fileID != "" {
		req.Attachments = []openai.ThreadAttachment{{
			FileID: fileID,
			Tools: []openai.ThreadAttachmentTool{
				{Type: string(openai.AssistantToolTypeCodeInterpreter)},
			},
		}}
	}
	if _, err := c.client.CreateMessage(ctx, threadID, req); err != nil {
		return errors.Wrap(err, "creating message")
	}
	return nil
}

// CreateRun starts a run on a thread and returns the run id
func (c *AssistantClient) CreateRun(ctx context.Context, threadID, assistantID string) (string, error) {
	run, err := c.client.CreateRun(ctx, threadID, openai.RunRequest{AssistantID: assistantID})
	if err != nil {
		return "", errors.Wrap(err, "creating run")
	}
	return run.ID, nil
}

// RetrieveRun returns the current status of a run
func (c *AssistantClient) RetrieveRun(ctx context.Context, threadID, runID string) (string, error) {
	run, err := c.client.RetrieveRun(ctx, threadID, runID)
	if err != nil {
		return "", errors.Wrap(err, "retrieving run")
	}
	return string(run.Status), nil
}

// LatestMessage fetches the most recent message on a thread
func (c *AssistantClient) LatestMessage(ctx context.Context, threadID string) (*ProviderMessage, error) {
	limit := 1
	order := "desc"
	list, err := c.client.ListMessage(ctx, threadID, &limit, &order, nil, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "listing messages")
	}
	if len(list.Messages) == 0 {
		return nil, errors.New("thread has no messages")
	}
	msg := list.Messages[0]
	out := &ProviderMessage{ID: msg.ID, Role: msg.Role}
	if len(msg.Content) > 0 && msg.Content[0].Type == "text" && msg.Content[0].Text != nil {
		out.IsText = true
		out.Text = msg.Content[0].Text.Value
	}
	return out, nil
}

// UploadFile uploads bytes to OpenAI tagged for assistant/code-interpreter use
func (c *AssistantClient) UploadFile(ctx context.Context, filename string, data []byte) (string, error) {
	file, err := c.client.CreateFileBytes(ctx, openai.FileBytesRequest{
		Name:    filename,
		Bytes:   data,
		Purpose: openai.PurposeAssistants,
	})
	if err != nil {
		return "", errors.Wrap(err, "uploading file")
	}
	return file.ID, nil
}
