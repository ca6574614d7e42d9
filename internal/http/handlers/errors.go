package handlers

import (
	"errors"
	"net/http"

	"backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses. Storage error
// text passes through verbatim; this API backs an internal admin tool.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		var internal domain.InternalError
		if errors.As(err, &internal) && internal.Err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": internal.Err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
