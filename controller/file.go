package controller

import (
	"io"
	"net/http"

	"lassie-backend/logic"
	"lassie-backend/middleware"

	"github.com/gin-gonic/gin"
)

// FileController handles file upload/listing endpoints
type FileController struct {
	fileLogic *logic.FileLogic
}

func NewFileController(fileLogic *logic.FileLogic) *FileController {
	return &FileController{fileLogic: fileLogic}
}

// Upload handles POST /files (multipart field "file")
func (c *FileController) Upload(ctx *gin.Context) {
	ownerID, err := middleware.OwnerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorBody{Error: err.Error()})
		return
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorBody{Error: "file is required", Details: err.Error()})
		return
	}
	src, err := header.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorBody{Error: "cannot open uploaded file", Details: err.Error()})
		return
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorBody{Error: "cannot read uploaded file", Details: err.Error()})
		return
	}

	rec, err := c.fileLogic.UploadFile(ctx.Request.Context(), ownerID, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rec)
}

// GetFiles handles GET /files
func (c *FileController) GetFiles(ctx *gin.Context) {
	ownerID, err := middleware.OwnerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorBody{Error: err.Error()})
		return
	}

	recs, err := c.fileLogic.GetFiles(ownerID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, recs)
}
