package controller

import (
	"errors"
	"net/http"

	"lassie-backend/logic"

	"github.com/gin-gonic/gin"
)

// errorBody is the JSON error shape shared by all endpoints
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// statusFor maps the logic error taxonomy onto HTTP statuses
func statusFor(err error) int {
	switch {
	case errors.Is(err, logic.ErrValidation), errors.Is(err, logic.ErrFileReference):
		return http.StatusBadRequest
	case errors.Is(err, logic.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx *gin.Context, err error) {
	ctx.JSON(statusFor(err), errorBody{Error: err.Error()})
}
