// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vadi/internal/modules/compare"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeCompareError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, compare.ErrEmptyPrompt),
		errors.Is(err, compare.ErrNoModels),
		errors.Is(err, compare.ErrInvalidMode),
		errors.Is(err, compare.ErrUnknownModel):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, compare.ErrSuperseded):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
