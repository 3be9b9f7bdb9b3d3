package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careercompass/backend/models"
	"github.com/careercompass/backend/storage"
)

func respondError(c *gin.Context, status int, message, details string) {
	c.JSON(status, models.ErrorResponse{
		Error:   message,
		Code:    status,
		Details: details,
	})
}

// respondStoreError maps storage sentinels to HTTP statuses
func respondStoreError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, storage.ErrUnavailable):
		respondError(c, http.StatusServiceUnavailable, "Storage is unavailable", "")
	case errors.Is(err, storage.ErrNotFound):
		respondError(c, http.StatusNotFound, notFound, "")
	case errors.Is(err, storage.ErrAlreadyExists):
		respondError(c, http.StatusConflict, "Already exists", "")
	default:
		respondError(c, http.StatusInternalServerError, "Internal server error", "")
	}
}
