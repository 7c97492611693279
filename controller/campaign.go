package controller

import (
	"net/http"
	"time"

	"lassie-backend/logic"
	"lassie-backend/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CampaignController handles campaign CRUD endpoints
type CampaignController struct {
	campaignLogic *logic.CampaignLogic
}

func NewCampaignController(campaignLogic *logic.CampaignLogic) *CampaignController {
	return &CampaignController{campaignLogic: campaignLogic}
}

type campaignRequest struct {
	BrandID   string     `json:"brand_id"`
	Name      string     `json:"name" binding:"required"`
	Status    string     `json:"status"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Budget    float64    `json:"budget"`
}

func (r *campaignRequest) input() logic.CampaignInput {
	return logic.CampaignInput{
		Name:      r.Name,
		Status:    r.Status,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Budget:    r.Budget,
	}
}

// CreateCampaign handles POST /campaigns
func (c *CampaignController) CreateCampaign(ctx *gin.Context) {
	ownerID, err := middleware.OwnerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorBody{Error: err.Error()})
		return
	}
	var req campaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	brandID, err := uuid.Parse(req.BrandID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorBody{Error: "invalid brand id"})
		return
	}

	campaign, err := c.campaignLogic.CreateCampaign(ownerID, brandID, req.input())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, campaign)
}

// GetCampaigns handles GET /campaigns with an optional brand_id filter
func (c *CampaignController) GetCampaigns(ctx *gin.Context) {
	ownerID, err := middleware.OwnerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorBody{Error: err.Error()})
		return
	}
	var brandID *uuid.UUID
	if raw := ctx.Query("brand_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, errorBody{Error: "invalid brand id"})
			return
		}
		brandID = &parsed
	}

	campaigns, err := c.campaignLogic.GetCampaigns(ownerID, brandID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, campaigns)
}

// GetCampaign handles GET /campaigns/:id
func (c *CampaignController) GetCampaign(ctx *gin.Context) {
	ownerID, err := middleware.OwnerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorBody{Error: err.Error()})
		return
	}
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorBody{Error: "invalid campaign id"})
		return
	}

	campaign, err := c.campaignLogic.GetCampaign(id, ownerID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, campaign)
}

// UpdateCampaign handles PUT /campaigns/:id
func (c *CampaignController) UpdateCampaign(ctx *gin.Context) {
	ownerID, err := middleware.OwnerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorBody{Error: err.Error()})
		return
	}
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorBody{Error: "invalid campaign id"})
		return
	}
	var req campaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	campaign, err := c.campaignLogic.UpdateCampaign(id, ownerID, req.input())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, campaign)
}

// DeleteCampaign handles DELETE /campaigns/:id
func (c *CampaignController) DeleteCampaign(ctx *gin.Context) {
	ownerID, err := middleware.OwnerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorBody{Error: err.Error()})
		return
	}
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorBody{Error: "invalid campaign id"})
		return
	}

	if err := c.campaignLogic.DeleteCampaign(id, ownerID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
