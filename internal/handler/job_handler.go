package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kimthedrew/jobsabroad/internal/domain"
	"github.com/kimthedrew/jobsabroad/internal/domain/dto"
	"github.com/kimthedrew/jobsabroad/internal/service"
)

type JobHandler struct {
	jobService *service.JobService
}

func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// List handles GET /jobs: public active-job listing with filters.
func (h *JobHandler) List(c *gin.Context) {
	filter := domain.JobFilter{
		Category: c.Query("category"),
		Type:     c.Query("type"),
		Search:   c.Query("search"),
		Remote:   c.Query("remote") == "true",
	}

	jobs, err := h.jobService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// Get handles GET /jobs/:id: public, counts the view.
func (h *JobHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid job ID format")
		return
	}

	job, err := h.jobService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": job})
}

// Create handles POST /jobs: employers only.
func (h *JobHandler) Create(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		respondError(c, domain.ErrUnauthenticated)
		return
	}
	if !user.IsEmployer() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only employers can post jobs"})
		return
	}

	var req dto.JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format")
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"job": job})
}

// Update handles PUT /jobs/:id: owning employer only.
func (h *JobHandler) Update(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		respondError(c, domain.ErrUnauthenticated)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid job ID format")
		return
	}

	var req dto.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format")
		return
	}

	job, err := h.jobService.Update(c.Request.Context(), id, user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": job})
}

// Delete handles DELETE /jobs/:id: owning employer only.
func (h *JobHandler) Delete(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		respondError(c, domain.ErrUnauthenticated)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid job ID format")
		return
	}

	if err := h.jobService.Delete(c.Request.Context(), id, user.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// MyJobs handles GET /jobs/my-jobs: the employer's own postings, drafts
// included.
func (h *JobHandler) MyJobs(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		respondError(c, domain.ErrUnauthenticated)
		return
	}
	if !user.IsEmployer() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only employers can access this endpoint"})
		return
	}

	jobs, err := h.jobService.ListByEmployer(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}
