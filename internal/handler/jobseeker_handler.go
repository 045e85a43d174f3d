package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kimthedrew/jobsabroad/internal/domain"
	"github.com/kimthedrew/jobsabroad/internal/service"
)

type JobSeekerHandler struct {
	searchService *service.SearchService
}

func NewJobSeekerHandler(searchService *service.SearchService) *JobSeekerHandler {
	return &JobSeekerHandler{searchService: searchService}
}

// Search handles GET /jobseekers: employer-only candidate search.
func (h *JobSeekerHandler) Search(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		respondError(c, domain.ErrUnauthenticated)
		return
	}
	if !user.IsEmployer() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only employers can search job seekers"})
		return
	}

	filter := candidateFilterFromQuery(c)

	page, err := h.searchService.Search(c.Request.Context(), user, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Get handles GET /jobseekers/:id: employer-only candidate detail.
func (h *JobSeekerHandler) Get(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		respondError(c, domain.ErrUnauthenticated)
		return
	}
	if !user.IsEmployer() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only employers can view job seeker profiles"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid user ID format")
		return
	}

	candidate, err := h.searchService.Get(c.Request.Context(), user, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobSeeker": candidate})
}

func candidateFilterFromQuery(c *gin.Context) domain.CandidateFilter {
	filter := domain.CandidateFilter{
		Search:         c.Query("search"),
		Availability:   c.Query("availability"),
		Location:       c.Query("location"),
		EmploymentType: c.Query("employmentType"),
		SalaryMin:      queryInt64(c, "salaryMin"),
		SalaryMax:      queryInt64(c, "salaryMax"),
	}

	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = limit
	}

	// Skills arrive as a comma-separated list; blanks are skipped.
	if raw := c.Query("skills"); raw != "" {
		for _, skill := range strings.Split(raw, ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				filter.Skills = append(filter.Skills, skill)
			}
		}
	}

	return filter
}

func queryInt64(c *gin.Context, name string) *int64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
