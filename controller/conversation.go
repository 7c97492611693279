package controller

import (
	"net/http"

	"lassie-backend/logic"
	"lassie-backend/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ConversationController handles conversation read endpoints
type ConversationController struct {
	convoLogic *logic.ConversationLogic
}

func NewConversationController(convoLogic *logic.ConversationLogic) *ConversationController {
	return &ConversationController{convoLogic: convoLogic}
}

// GetConversations handles GET /conversations
func (c *ConversationController) GetConversations(ctx *gin.Context) {
	ownerID, err := middleware.OwnerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorBody{Error: err.Error()})
		return
	}

	convos, err := c.convoLogic.GetConversations(ownerID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, convos)
}

// GetMessages handles GET /conversations/:id/messages
func (c *ConversationController) GetMessages(ctx *gin.Context) {
	ownerID, err := middleware.OwnerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorBody{Error: err.Error()})
		return
	}

	convoID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorBody{Error: "invalid conversation id"})
		return
	}

	messages, err := c.convoLogic.GetConversationMessages(convoID, ownerID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, messages)
}
