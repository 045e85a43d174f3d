package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/kimthedrew/jobsabroad/internal/domain"
	"github.com/kimthedrew/jobsabroad/internal/domain/dto"
)

type ApplicationService struct {
	appRepo   domain.ApplicationRepository
	jobRepo   domain.JobRepository
	sanitizer *domain.Sanitizer
}

func NewApplicationService(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository) *ApplicationService {
	return &ApplicationService{
		appRepo:   appRepo,
		jobRepo:   jobRepo,
		sanitizer: domain.NewSanitizer(),
	}
}

// Submit files an application against an active job. The employer id is
// denormalized from the job so status updates can be authorized without a
// join. Duplicate submissions are rejected by the store's unique constraint.
func (s *ApplicationService) Submit(ctx context.Context, seeker *domain.User, req *dto.ApplicationSubmitRequest) (*domain.Application, error) {
	if !seeker.IsJobSeeker() {
		return nil, domain.ErrForbidden
	}

	if err := domain.ValidateStruct(req); err != nil {
		return nil, err
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return nil, domain.NewValidationError("jobId", "invalid job ID format", domain.ErrInvalidField)
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	if !job.AcceptsApplications() {
		return nil, domain.ErrInvalidState
	}

	app := &domain.Application{
		ID:          uuid.New(),
		JobID:       job.ID,
		JobSeekerID: seeker.ID,
		EmployerID:  job.EmployerID,
		CoverLetter: s.sanitizer.Clean(req.CoverLetter),
		Resume:      req.Resume,
		Status:      domain.StatusPending,
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// List returns the caller's applications: their own submissions for a seeker,
// applications against their jobs for an employer. Newest first.
func (s *ApplicationService) List(ctx context.Context, caller *domain.User) ([]*domain.ApplicationDetails, error) {
	if caller.IsJobSeeker() {
		return s.appRepo.ListBySeeker(ctx, caller.ID)
	}
	return s.appRepo.ListByEmployer(ctx, caller.ID)
}

// Get fetches one application. Only the seeker and employer parties may see it.
func (s *ApplicationService) Get(ctx context.Context, id, callerID uuid.UUID) (*domain.ApplicationDetails, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrNotFound
	}
	if !app.IsParty(callerID) {
		return nil, domain.ErrForbidden
	}
	return app, nil
}

// Transition moves an application to a new status. Only the owning employer
// may transition, to any known status: the triage workflow is intentionally
// unrestricted (accepted back to pending included).
func (s *ApplicationService) Transition(ctx context.Context, id uuid.UUID, caller *domain.User, req *dto.ApplicationUpdateRequest) (*domain.Application, error) {
	if !caller.IsEmployer() {
		return nil, domain.ErrForbidden
	}

	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrNotFound
	}
	if app.EmployerID != caller.ID {
		return nil, domain.ErrForbidden
	}

	status := app.Status
	if req.Status != "" {
		if status, err = domain.ParseApplicationStatus(req.Status); err != nil {
			return nil, err
		}
	}

	var notes *string
	if req.Notes != nil {
		cleaned := s.sanitizer.Clean(*req.Notes)
		notes = &cleaned
	}

	return s.appRepo.UpdateStatus(ctx, id, status, notes)
}
