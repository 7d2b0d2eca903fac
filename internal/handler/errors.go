package handler

import (
	"errors"
	"net/http"

	"exercise-tracker/internal/transport/httpdto"
	tracker_errors "exercise-tracker/pkg/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP statuses: validation failures to
// 400, missing users to 404, everything else (store failures) to 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tracker_errors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(err.Error(), "INVALID_REQUEST"))
	case errors.Is(err, tracker_errors.ErrNotFound):
		c.JSON(http.StatusNotFound, httpdto.NewErrorResponse("user not found", "NOT_FOUND"))
	default:
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(err.Error(), "STORE_FAILURE"))
	}
}
