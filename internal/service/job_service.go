package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kimthedrew/jobsabroad/internal/domain"
	"github.com/kimthedrew/jobsabroad/internal/domain/dto"
)

// listingCap bounds the public listing. The listing endpoint has always
// served at most 50 postings per request without pagination; clients expect
// the unpaginated shape, so the ceiling stays.
const listingCap = 50

type JobService struct {
	jobRepo     domain.JobRepository
	profileRepo domain.ProfileRepository
	sanitizer   *domain.Sanitizer
}

func NewJobService(jobRepo domain.JobRepository, profileRepo domain.ProfileRepository) *JobService {
	return &JobService{
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
		sanitizer:   domain.NewSanitizer(),
	}
}

// List returns active postings with the owning company's profile attached.
// Employer profiles are resolved with one bulk fetch and a local map join.
func (s *JobService) List(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithEmployer, error) {
	jobs, err := s.jobRepo.ListActive(ctx, filter, listingCap)
	if err != nil {
		return nil, err
	}

	employerIDs := make([]uuid.UUID, 0, len(jobs))
	seen := make(map[uuid.UUID]bool, len(jobs))
	for _, job := range jobs {
		if !seen[job.EmployerID] {
			seen[job.EmployerID] = true
			employerIDs = append(employerIDs, job.EmployerID)
		}
	}

	profiles, err := s.profileRepo.GetEmployersByUserIDs(ctx, employerIDs)
	if err != nil {
		return nil, err
	}

	enriched := make([]domain.JobWithEmployer, 0, len(jobs))
	for _, job := range jobs {
		enriched = append(enriched, domain.JobWithEmployer{
			Job:      *job,
			Employer: profiles[job.EmployerID],
		})
	}
	return enriched, nil
}

// Get fetches one posting, counting the view. Every fetch counts; there is no
// per-viewer dedup.
func (s *JobService) Get(ctx context.Context, id uuid.UUID) (*domain.JobWithEmployer, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}

	if err := s.jobRepo.IncrementViews(ctx, id); err != nil {
		log.Warn().Err(err).Str("job_id", id.String()).Msg("failed to increment views")
	} else {
		job.Views++
	}

	employer, err := s.profileRepo.GetEmployer(ctx, job.EmployerID)
	if err != nil {
		return nil, err
	}

	return &domain.JobWithEmployer{Job: *job, Employer: employer}, nil
}

func (s *JobService) Create(ctx context.Context, employerID uuid.UUID, req *dto.JobCreateRequest) (*domain.Job, error) {
	if err := domain.ValidateStruct(req); err != nil {
		return nil, err
	}

	jobType, err := domain.ParseJobType(req.Type)
	if err != nil {
		return nil, err
	}

	status := domain.JobStatusActive
	if req.Status != "" {
		if status, err = domain.ParseJobStatus(req.Status); err != nil {
			return nil, err
		}
	}

	job := &domain.Job{
		ID:               uuid.New(),
		EmployerID:       employerID,
		Title:            s.sanitizer.Clean(req.Title),
		Description:      s.sanitizer.Clean(req.Description),
		Requirements:     s.sanitizer.CleanAll(req.Requirements),
		Responsibilities: s.sanitizer.CleanAll(req.Responsibilities),
		Type:             jobType,
		Location:         s.sanitizer.Clean(req.Location),
		Remote:           req.Remote,
		Salary:           salaryFromInput(req.Salary),
		Skills:           s.sanitizer.CleanAll(req.Skills),
		Experience:       req.Experience,
		Category:         req.Category,
		Status:           status,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Update mutates a posting. Only the owning employer may do so.
func (s *JobService) Update(ctx context.Context, id, callerID uuid.UUID, req *dto.JobUpdateRequest) (*domain.Job, error) {
	job, err := s.ownedJob(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = s.sanitizer.Clean(*req.Title)
	}
	if req.Description != nil {
		job.Description = s.sanitizer.Clean(*req.Description)
	}
	if req.Requirements != nil {
		job.Requirements = s.sanitizer.CleanAll(req.Requirements)
	}
	if req.Responsibilities != nil {
		job.Responsibilities = s.sanitizer.CleanAll(req.Responsibilities)
	}
	if req.Type != nil {
		if job.Type, err = domain.ParseJobType(*req.Type); err != nil {
			return nil, err
		}
	}
	if req.Location != nil {
		job.Location = s.sanitizer.Clean(*req.Location)
	}
	if req.Remote != nil {
		job.Remote = *req.Remote
	}
	if req.Salary != nil {
		job.Salary = salaryFromInput(req.Salary)
	}
	if req.Skills != nil {
		job.Skills = s.sanitizer.CleanAll(req.Skills)
	}
	if req.Experience != nil {
		job.Experience = *req.Experience
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.Status != nil {
		if job.Status, err = domain.ParseJobStatus(*req.Status); err != nil {
			return nil, err
		}
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) Delete(ctx context.Context, id, callerID uuid.UUID) error {
	if _, err := s.ownedJob(ctx, id, callerID); err != nil {
		return err
	}
	return s.jobRepo.Delete(ctx, id)
}

// ListByEmployer returns the employer's own postings, drafts included.
func (s *JobService) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]*domain.Job, error) {
	return s.jobRepo.ListByEmployer(ctx, employerID)
}

func (s *JobService) ownedJob(ctx context.Context, id, callerID uuid.UUID) (*domain.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	if job.EmployerID != callerID {
		return nil, domain.ErrForbidden
	}
	return job, nil
}

// salaryFromInput keeps a salary only when both bounds were supplied.
func salaryFromInput(in *dto.SalaryInput) *domain.Salary {
	if in == nil || in.Min == nil || in.Max == nil {
		return nil
	}
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	return &domain.Salary{Min: *in.Min, Max: *in.Max, Currency: currency}
}
