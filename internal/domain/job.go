package domain

import (
	"time"

	"github.com/google/uuid"
)

type JobType string

const (
	JobTypeFullTime  JobType = "full-time"
	JobTypePartTime  JobType = "part-time"
	JobTypeContract  JobType = "contract"
	JobTypeFreelance JobType = "freelance"
)

func ParseJobType(s string) (JobType, error) {
	jt := JobType(s)
	switch jt {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeFreelance:
		return jt, nil
	}
	return "", NewValidationError("type", "must be one of: full-time, part-time, contract, freelance", ErrInvalidField)
}

type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

func ParseJobStatus(s string) (JobStatus, error) {
	js := JobStatus(s)
	switch js {
	case JobStatusActive, JobStatusClosed, JobStatusDraft:
		return js, nil
	}
	return "", NewValidationError("status", "must be one of: active, closed, draft", ErrInvalidField)
}

// Salary is present on a job only when both bounds were supplied.
type Salary struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

type Job struct {
	ID               uuid.UUID `json:"id" db:"id"`
	EmployerID       uuid.UUID `json:"employerId" db:"employer_id"`
	Title            string    `json:"title" db:"title"`
	Description      string    `json:"description" db:"description"`
	Requirements     []string  `json:"requirements" db:"requirements"`
	Responsibilities []string  `json:"responsibilities" db:"responsibilities"`
	Type             JobType   `json:"type" db:"type"`
	Location         string    `json:"location" db:"location"`
	Remote           bool      `json:"remote" db:"remote"`
	Salary           *Salary   `json:"salary,omitempty"`
	Skills           []string  `json:"skills" db:"skills"`
	Experience       string    `json:"experience,omitempty" db:"experience"`
	Category         string    `json:"category" db:"category"`
	Status           JobStatus `json:"status" db:"status"`
	Applications     int       `json:"applications" db:"applications"`
	Views            int       `json:"views" db:"views"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}

// AcceptsApplications reports whether new applications may be submitted.
// Only active postings accept them, regardless of the caller.
func (j *Job) AcceptsApplications() bool {
	return j.Status == JobStatusActive
}
