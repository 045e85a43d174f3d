package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/kimthedrew/jobsabroad/internal/domain"
)

// respondError maps service errors to the HTTP taxonomy. Conflict and invalid
// state both surface as 400 to stay wire-compatible with existing clients.
// Anything unrecognized is logged and returned as an opaque 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already exists"})
	case errors.Is(err, domain.ErrInvalidState):
		c.JSON(http.StatusBadRequest, gin.H{"error": "This job is no longer accepting applications"})
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
