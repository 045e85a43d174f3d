package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kimthedrew/jobsabroad/internal/domain"
	"github.com/kimthedrew/jobsabroad/internal/domain/dto"
	"github.com/kimthedrew/jobsabroad/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ownPathID parses the :id path param and checks it names the caller.
// Profiles are only readable and writable by their owner.
func ownPathID(c *gin.Context, user *domain.User) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid user ID format")
		return uuid.Nil, false
	}
	if id != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return uuid.Nil, false
	}
	return id, true
}

// GetJobSeeker handles GET /profile/jobseeker/:id.
func (h *ProfileHandler) GetJobSeeker(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		respondError(c, domain.ErrUnauthenticated)
		return
	}

	id, ok := ownPathID(c, user)
	if !ok {
		return
	}

	profile, err := h.profileService.GetJobSeekerProfile(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateJobSeeker handles PUT /profile/jobseeker/:id: job seekers only.
func (h *ProfileHandler) UpdateJobSeeker(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		respondError(c, domain.ErrUnauthenticated)
		return
	}
	if !user.IsJobSeeker() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only job seekers can update this profile"})
		return
	}

	id, ok := ownPathID(c, user)
	if !ok {
		return
	}

	var req dto.JobSeekerProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format")
		return
	}

	profile, err := h.profileService.UpdateJobSeekerProfile(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// GetEmployer handles GET /profile/employer/:id.
func (h *ProfileHandler) GetEmployer(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		respondError(c, domain.ErrUnauthenticated)
		return
	}

	id, ok := ownPathID(c, user)
	if !ok {
		return
	}

	profile, err := h.profileService.GetEmployerProfile(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateEmployer handles PUT /profile/employer/:id: employers only.
func (h *ProfileHandler) UpdateEmployer(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		respondError(c, domain.ErrUnauthenticated)
		return
	}
	if !user.IsEmployer() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only employers can update this profile"})
		return
	}

	id, ok := ownPathID(c, user)
	if !ok {
		return
	}

	var req dto.EmployerProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format")
		return
	}

	profile, err := h.profileService.UpdateEmployerProfile(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
