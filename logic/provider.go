package logic

import (
	"context"

	"lassie-backend/pkg"
)

// AssistantProvider is the slice of the OpenAI Assistants API the chat
// flow consumes. Satisfied by *pkg.AssistantClient.
type AssistantProvider interface {
	CreateThread(ctx context.Context) (string, error)
	CreateAssistant(ctx context.Context, name, instructions string) (string, error)
	RetrieveAssistant(ctx context.Context, assistantID string) (string, error)
	CreateMessage(ctx context.Context, threadID, content, fileID string) error
	CreateRun(ctx context.Context, threadID, assistantID string) (string, error)
	RetrieveRun(ctx context.Context, threadID, runID string) (string, error)
	LatestMessage(ctx context.Context, threadID string) (*pkg.ProviderMessage, error)
	UploadFile(ctx context.Context, filename string, data []byte) (string, error)
}

// ObjectStore is the object-storage contract. Satisfied by
// *pkg.StorageClient.
type ObjectStore interface {
	Download(ctx context.Context, path string) ([]byte, error)
	Upload(ctx context.Context, path string, data []byte, contentType string) error
}
