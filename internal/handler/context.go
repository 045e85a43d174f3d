package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kimthedrew/jobsabroad/internal/domain"
	"github.com/kimthedrew/jobsabroad/internal/middleware"
)

// caller reconstructs the authenticated subject from token claims. Role is
// trusted as-is from the token; endpoints that need the full account re-fetch
// it themselves.
func caller(c *gin.Context) (*domain.User, bool) {
	id, ok := middleware.CallerID(c)
	if !ok {
		return nil, false
	}
	role, ok := middleware.CallerRole(c)
	if !ok {
		return nil, false
	}
	return &domain.User{ID: id, UserType: role}, true
}
