package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/kimthedrew/jobsabroad/internal/domain"
	"github.com/kimthedrew/jobsabroad/internal/domain/dto"
)

func strp(s string) *string { return &s }

func TestListAttachesEmployerProfiles(t *testing.T) {
	employerA := uuid.New()
	employerB := uuid.New()

	jobRepo := &fakeJobRepo{active: []*domain.Job{
		{ID: uuid.New(), EmployerID: employerA, Title: "Backend Engineer"},
		{ID: uuid.New(), EmployerID: employerB, Title: "Designer"},
		{ID: uuid.New(), EmployerID: employerA, Title: "SRE"},
	}}
	profileRepo := newFakeProfileRepo()
	profileRepo.employerProfiles[employerA] = &domain.EmployerProfile{
		UserID: employerA, CompanyName: "Acme",
	}

	svc := NewJobService(jobRepo, profileRepo)

	jobs, err := svc.List(context.Background(), domain.JobFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if jobRepo.gotLimit != 50 {
		t.Errorf("listing limit = %d, want 50", jobRepo.gotLimit)
	}
	if len(jobs) != 3 {
		t.Fatalf("got %d jobs", len(jobs))
	}
	if jobs[0].Employer == nil || jobs[0].Employer.CompanyName != "Acme" {
		t.Errorf("employer profile not joined: %+v", jobs[0].Employer)
	}
	// A posting whose employer has no profile still lists, with a nil employer.
	if jobs[1].Employer != nil {
		t.Errorf("profileless employer should be nil, got %+v", jobs[1].Employer)
	}
}

func TestGetCountsView(t *testing.T) {
	job := &domain.Job{ID: uuid.New(), EmployerID: uuid.New(), Views: 7, Status: domain.JobStatusActive}
	jobRepo := &fakeJobRepo{jobs: map[uuid.UUID]*domain.Job{job.ID: job}}
	svc := NewJobService(jobRepo, newFakeProfileRepo())

	got, err := svc.Get(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(jobRepo.viewed) != 1 || jobRepo.viewed[0] != job.ID {
		t.Errorf("view not counted: %v", jobRepo.viewed)
	}
	if got.Views != 8 {
		t.Errorf("returned views = %d, want 8", got.Views)
	}
}

// A failed counter bump must not fail the fetch.
func TestGetSurvivesViewCounterFailure(t *testing.T) {
	job := &domain.Job{ID: uuid.New(), EmployerID: uuid.New(), Views: 7}
	jobRepo := &fakeJobRepo{
		jobs:     map[uuid.UUID]*domain.Job{job.ID: job},
		viewsErr: errors.New("connection reset"),
	}
	svc := NewJobService(jobRepo, newFakeProfileRepo())

	got, err := svc.Get(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Views != 7 {
		t.Errorf("views = %d, want unchanged 7", got.Views)
	}
}

func TestGetMissingJob(t *testing.T) {
	svc := NewJobService(&fakeJobRepo{jobs: map[uuid.UUID]*domain.Job{}}, newFakeProfileRepo())

	_, err := svc.Get(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateDefaultsToActive(t *testing.T) {
	svc := NewJobService(&fakeJobRepo{}, newFakeProfileRepo())

	job, err := svc.Create(context.Background(), uuid.New(), &dto.JobCreateRequest{
		Title:       "Backend Engineer",
		Description: "Build APIs",
		Type:        "full-time",
		Location:    "Remote",
		Category:    "engineering",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if job.Status != domain.JobStatusActive {
		t.Errorf("status = %s, want active", job.Status)
	}
}

func TestCreateRejectsUnknownType(t *testing.T) {
	svc := NewJobService(&fakeJobRepo{}, newFakeProfileRepo())

	_, err := svc.Create(context.Background(), uuid.New(), &dto.JobCreateRequest{
		Title:       "Backend Engineer",
		Description: "Build APIs",
		Type:        "internship",
		Location:    "Remote",
		Category:    "engineering",
	})
	if !domain.IsValidation(err) {
		t.Errorf("err = %v, want validation error", err)
	}
}

func TestUpdateOwnershipCheck(t *testing.T) {
	owner := uuid.New()
	job := &domain.Job{ID: uuid.New(), EmployerID: owner, Title: "Old"}
	jobRepo := &fakeJobRepo{jobs: map[uuid.UUID]*domain.Job{job.ID: job}}
	svc := NewJobService(jobRepo, newFakeProfileRepo())

	_, err := svc.Update(context.Background(), job.ID, uuid.New(), &dto.JobUpdateRequest{Title: strp("New")})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("stranger update err = %v, want ErrForbidden", err)
	}

	updated, err := svc.Update(context.Background(), job.ID, owner, &dto.JobUpdateRequest{Title: strp("New")})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != "New" {
		t.Errorf("title = %q", updated.Title)
	}
}

func TestDeleteOwnershipCheck(t *testing.T) {
	owner := uuid.New()
	job := &domain.Job{ID: uuid.New(), EmployerID: owner}
	jobRepo := &fakeJobRepo{jobs: map[uuid.UUID]*domain.Job{job.ID: job}}
	svc := NewJobService(jobRepo, newFakeProfileRepo())

	if err := svc.Delete(context.Background(), job.ID, uuid.New()); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("stranger delete err = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(context.Background(), job.ID, owner); err != nil {
		t.Errorf("owner delete failed: %v", err)
	}
	if len(jobRepo.deleted) != 1 {
		t.Errorf("deleted = %v", jobRepo.deleted)
	}
}

func TestSalaryFromInput(t *testing.T) {
	min, max := int64(1000), int64(2000)

	if got := salaryFromInput(nil); got != nil {
		t.Errorf("nil input produced %+v", got)
	}
	if got := salaryFromInput(&dto.SalaryInput{Min: &min}); got != nil {
		t.Errorf("half-bounded input produced %+v", got)
	}

	got := salaryFromInput(&dto.SalaryInput{Min: &min, Max: &max})
	if got == nil || got.Min != 1000 || got.Max != 2000 || got.Currency != "USD" {
		t.Errorf("salary = %+v", got)
	}
}
