package controller

import (
	"net/http"

	"lassie-backend/config"
	"lassie-backend/logic"
	"lassie-backend/middleware"

	"github.com/gin-gonic/gin"
)

// ChatController handles the chat relay endpoint
type ChatController struct {
	chatLogic *logic.ChatLogic
}

func NewChatController(chatLogic *logic.ChatLogic) *ChatController {
	return &ChatController{chatLogic: chatLogic}
}

// Stream handles POST /chat/stream. The reply is written as plain text;
// when a new conversation was created its id is exposed via the
// X-Thread-ID response header so the client can reuse it.
func (c *ChatController) Stream(ctx *gin.Context) {
	type Request struct {
		Message       string                 `json:"message" binding:"required"`
		ThreadID      string                 `json:"thread_id"`
		AssistantID   string                 `json:"assistantId"`
		Filename      string                 `json:"filename"`
		HiddenMessage bool                   `json:"hiddenMessage"`
		Context       map[string]interface{} `json:"context"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorBody{Error: "message is required", Details: err.Error()})
		return
	}

	ownerID, err := middleware.OwnerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorBody{Error: err.Error()})
		return
	}

	assistantID := req.AssistantID
	if assistantID == "" {
		assistantID = config.GlobalConfig.Chat.DefaultAssistantID
	}

	result, err := c.chatLogic.SendMessage(ctx.Request.Context(), logic.ChatRequest{
		OwnerID:     ownerID,
		Message:     req.Message,
		ThreadID:    req.ThreadID,
		AssistantID: assistantID,
		FileID:      req.Filename,
		Hidden:      req.HiddenMessage,
		Context:     req.Context,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	if result.IsNewThread {
		ctx.Header("X-Thread-ID", result.ThreadID.String())
	}
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(result.Reply))
}
