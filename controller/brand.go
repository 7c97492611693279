package controller

import (
	"net/http"

	"lassie-backend/logic"
	"lassie-backend/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BrandController handles brand CRUD endpoints
type BrandController struct {
	brandLogic *logic.BrandLogic
}

func NewBrandController(brandLogic *logic.BrandLogic) *BrandController {
	return &BrandController{brandLogic: brandLogic}
}

type brandRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateBrand handles POST /brands
func (c *BrandController) CreateBrand(ctx *gin.Context) {
	ownerID, err := middleware.OwnerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorBody{Error: err.Error()})
		return
	}
	var req brandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	brand, err := c.brandLogic.CreateBrand(ownerID, req.Name, req.Description)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, brand)
}

// GetBrands handles GET /brands
func (c *BrandController) GetBrands(ctx *gin.Context) {
	ownerID, err := middleware.OwnerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorBody{Error: err.Error()})
		return
	}

	brands, err := c.brandLogic.GetBrands(ownerID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, brands)
}

// GetBrand handles GET /brands/:id
func (c *BrandController) GetBrand(ctx *gin.Context) {
	ownerID, err := middleware.OwnerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorBody{Error: err.Error()})
		return
	}
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorBody{Error: "invalid brand id"})
		return
	}

	brand, err := c.brandLogic.GetBrand(id, ownerID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, brand)
}

// UpdateBrand handles PUT /brands/:id
func (c *BrandController) UpdateBrand(ctx *gin.Context) {
	ownerID, err := middleware.OwnerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorBody{Error: err.Error()})
		return
	}
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorBody{Error: "invalid brand id"})
		return
	}
	var req brandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	brand, err := c.brandLogic.UpdateBrand(id, ownerID, req.Name, req.Description)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, brand)
}

// DeleteBrand handles DELETE /brands/:id
func (c *BrandController) DeleteBrand(ctx *gin.Context) {
	ownerID, err := middleware.OwnerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorBody{Error: err.Error()})
		return
	}
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorBody{Error: "invalid brand id"})
		return
	}

	if err := c.brandLogic.DeleteBrand(id, ownerID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
