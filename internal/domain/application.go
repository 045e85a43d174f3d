package domain

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the triage state an employer assigns to an application.
//
// The status set is deliberately an open enum: an employer may move an
// application between any two states, including out of accepted or rejected.
// The review process is human-driven (review → shortlist → accept/reject with
// backtracking) and the software does not impose an adjacency graph on it.
type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "pending"
	StatusReviewed    ApplicationStatus = "reviewed"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
	StatusAccepted    ApplicationStatus = "accepted"
)

// ParseApplicationStatus converts a raw string to an ApplicationStatus,
// returning an error for unknown values.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(s)
	switch st {
	case StatusPending, StatusReviewed, StatusShortlisted, StatusRejected, StatusAccepted:
		return st, nil
	}
	return "", NewValidationError("status", "unknown application status", ErrInvalidField)
}

// CanTransition reports whether an application may move from → to. Every pair
// of known statuses is allowed; only the status values themselves are checked.
func CanTransition(from, to ApplicationStatus) bool {
	if _, err := ParseApplicationStatus(string(from)); err != nil {
		return false
	}
	if _, err := ParseApplicationStatus(string(to)); err != nil {
		return false
	}
	return true
}

// Application joins a job with the seeker who applied to it. EmployerID is
// denormalized from the job at creation so status updates can be authorized
// without a join; it is never independently mutated.
type Application struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	JobID       uuid.UUID         `json:"jobId" db:"job_id"`
	JobSeekerID uuid.UUID         `json:"jobSeekerId" db:"job_seeker_id"`
	EmployerID  uuid.UUID         `json:"employerId" db:"employer_id"`
	CoverLetter string            `json:"coverLetter" db:"cover_letter"`
	Resume      string            `json:"resume,omitempty" db:"resume"`
	Status      ApplicationStatus `json:"status" db:"status"`
	Notes       string            `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time         `json:"updatedAt" db:"updated_at"`
}

// IsParty reports whether userID is the seeker or the employer side of the
// application. Only parties may fetch it.
func (a *Application) IsParty(userID uuid.UUID) bool {
	return a.JobSeekerID == userID || a.EmployerID == userID
}
