package controller

import (
	"net/http"

	"lassie-backend/logic"
	"lassie-backend/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PublisherController handles publisher CRUD endpoints
type PublisherController struct {
	publisherLogic *logic.PublisherLogic
}

func NewPublisherController(publisherLogic *logic.PublisherLogic) *PublisherController {
	return &PublisherController{publisherLogic: publisherLogic}
}

type publisherRequest struct {
	Name         string `json:"name" binding:"required"`
	Website      string `json:"website"`
	ContactEmail string `json:"contact_email"`
}

// CreatePublisher handles POST /publishers
func (c *PublisherController) CreatePublisher(ctx *gin.Context) {
	ownerID, err := middleware.OwnerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorBody{Error: err.Error()})
		return
	}
	var req publisherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	publisher, err := c.publisherLogic.CreatePublisher(ownerID, req.Name, req.Website, req.ContactEmail)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, publisher)
}

// GetPublishers handles GET /publishers
func (c *PublisherController) GetPublishers(ctx *gin.Context) {
	ownerID, err := middleware.OwnerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorBody{Error: err.Error()})
		return
	}

	publishers, err := c.publisherLogic.GetPublishers(ownerID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, publishers)
}

// GetPublisher handles GET /publishers/:id
func (c *PublisherController) GetPublisher(ctx *gin.Context) {
	ownerID, err := middleware.OwnerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorBody{Error: err.Error()})
		return
	}
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorBody{Error: "invalid publisher id"})
		return
	}

	publisher, err := c.publisherLogic.GetPublisher(id, ownerID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, publisher)
}

// UpdatePublisher handles PUT /publishers/:id
func (c *PublisherController) UpdatePublisher(ctx *gin.Context) {
	ownerID, err := middleware.OwnerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorBody{Error: err.Error()})
		return
	}
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorBody{Error: "invalid publisher id"})
		return
	}
	var req publisherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	publisher, err := c.publisherLogic.UpdatePublisher(id, ownerID, req.Name, req.Website, req.ContactEmail)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, publisher)
}

// DeletePublisher handles DELETE /publishers/:id
func (c *PublisherController) DeletePublisher(ctx *gin.Context) {
	ownerID, err := middleware.OwnerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorBody{Error: err.Error()})
		return
	}
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorBody{Error: "invalid publisher id"})
		return
	}

	if err := c.publisherLogic.DeletePublisher(id, ownerID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
