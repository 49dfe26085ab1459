package handlers

import (
	"UnifyMD/middlewares"
	"UnifyMD/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// respondError maps service errors to responses. Anything unrecognised is a
// store failure and is reported with the fixed message.
func respondError(c *gin.Context, err error, message string) {
	var fields validation.Errors
	switch {
	case errors.As(err, &fields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "fields": fields})
	case errors.Is(err, services.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
	case errors.Is(err, services.ErrPatientNotFound),
		errors.Is(err, services.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		middlewares.HttpError(c, message, http.StatusInternalServerError, err)
	}
}
