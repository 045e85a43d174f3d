package domain

import (
	"context"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type ProfileRepository interface {
	UpsertJobSeeker(ctx context.Context, profile *JobSeekerProfile) (*JobSeekerProfile, error)
	GetJobSeeker(ctx context.Context, userID uuid.UUID) (*JobSeekerProfile, error)
	UpsertEmployer(ctx context.Context, profile *EmployerProfile) (*EmployerProfile, error)
	GetEmployer(ctx context.Context, userID uuid.UUID) (*EmployerProfile, error)
	// GetEmployersByUserIDs bulk-fetches employer profiles for the listing
	// engine's batch join.
	GetEmployersByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*EmployerProfile, error)
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id uuid.UUID) (*Job, error)
	// IncrementViews bumps the view counter atomically in the store.
	IncrementViews(ctx context.Context, id uuid.UUID) error
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListActive(ctx context.Context, filter JobFilter, limit int) ([]*Job, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]*Job, error)
}

type ApplicationRepository interface {
	// Create inserts the application and increments the job's application
	// counter in one transaction. Returns ErrConflict when the (job, seeker)
	// pair already exists.
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id uuid.UUID) (*ApplicationDetails, error)
	ListBySeeker(ctx context.Context, seekerID uuid.UUID) ([]*ApplicationDetails, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]*ApplicationDetails, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status ApplicationStatus, notes *string) (*Application, error)
}

type CandidateRepository interface {
	Search(ctx context.Context, filter CandidateFilter) ([]Candidate, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Candidate, error)
}
