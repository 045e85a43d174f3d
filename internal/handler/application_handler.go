package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kimthedrew/jobsabroad/internal/domain"
	"github.com/kimthedrew/jobsabroad/internal/domain/dto"
	"github.com/kimthedrew/jobsabroad/internal/service"
)

type ApplicationHandler struct {
	appService *service.ApplicationService
}

func NewApplicationHandler(appService *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appService: appService}
}

// List handles GET /applications. Role-scoped: the seeker's own submissions
// or the employer's incoming applications.
func (h *ApplicationHandler) List(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		respondError(c, domain.ErrUnauthenticated)
		return
	}

	applications, err := h.appService.List(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

// Submit handles POST /applications: job seekers only.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		respondError(c, domain.ErrUnauthenticated)
		return
	}
	if !user.IsJobSeeker() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only job seekers can apply to jobs"})
		return
	}

	var req dto.ApplicationSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format")
		return
	}

	application, err := h.appService.Submit(c.Request.Context(), user, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"application": application})
}

// Get handles GET /applications/:id: either party.
func (h *ApplicationHandler) Get(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		respondError(c, domain.ErrUnauthenticated)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid application ID format")
		return
	}

	application, err := h.appService.Get(c.Request.Context(), id, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": application})
}

// Update handles PUT /applications/:id: owning employer sets status/notes.
func (h *ApplicationHandler) Update(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		respondError(c, domain.ErrUnauthenticated)
		return
	}
	if !user.IsEmployer() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only employers can update applications"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid application ID format")
		return
	}

	var req dto.ApplicationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format")
		return
	}

	application, err := h.appService.Transition(c.Request.Context(), id, user, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": application})
}
