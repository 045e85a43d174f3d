package domain

import (
	"time"

	"github.com/google/uuid"
)

// CandidateFilter carries the employer-facing candidate search parameters.
// Zero values mean "not supplied". EmploymentType is accepted for API
// compatibility but filters nothing: the profile schema has no
// desired-employment-type field to match it against.
type CandidateFilter struct {
	Search         string
	Availability   string
	Location       string
	SalaryMin      *int64
	SalaryMax      *int64
	Skills         []string
	EmploymentType string
	Page           int
	Limit          int
}

// Normalize clamps pagination to sane bounds. The page defaults to 1 (a page
// below 1 would produce a negative offset) and the limit to 10, capped at 100.
func (f *CandidateFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
}

func (f *CandidateFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Candidate is the projected join of a job-seeker account and its profile as
// returned from search. Password and other internal account fields are never
// part of this projection.
type Candidate struct {
	ID        uuid.UUID        `json:"id"`
	FirstName string           `json:"firstName"`
	LastName  string           `json:"lastName"`
	Email     string           `json:"email"`
	Country   string           `json:"country"`
	CreatedAt time.Time        `json:"createdAt"`
	Profile   CandidateProfile `json:"profile"`
}

type CandidateProfile struct {
	Phone           string          `json:"phone,omitempty"`
	Location        string          `json:"location"`
	Bio             string          `json:"bio,omitempty"`
	ProfilePhoto    string          `json:"profilePhoto,omitempty"`
	DesiredJobTitle string          `json:"desiredJobTitle,omitempty"`
	Skills          []string        `json:"skills"`
	Experience      []Experience    `json:"experience"`
	Education       []Education     `json:"education"`
	Portfolio       []PortfolioItem `json:"portfolio,omitempty"`
	Availability    Availability    `json:"availability"`
	DesiredSalary   *int64          `json:"desiredSalary,omitempty"`
	Currency        string          `json:"currency"`
	LinkedIn        string          `json:"linkedIn,omitempty"`
	GitHub          string          `json:"github,omitempty"`
	Website         string          `json:"website,omitempty"`
	Resume          string          `json:"resume,omitempty"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// CandidatePage is one page of search results with pagination bookkeeping.
type CandidatePage struct {
	Candidates []Candidate `json:"jobSeekers"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"totalPages"`
}

// TotalPages computes ceil(total / limit) without floating point.
func TotalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// JobFilter carries the public job listing parameters.
type JobFilter struct {
	Category string
	Type     string
	Remote   bool
	Search   string
}

// JobWithEmployer is a listing result enriched with the posting company's
// profile, resolved in one bulk lookup rather than per row.
type JobWithEmployer struct {
	Job
	Employer *EmployerProfile `json:"employer,omitempty"`
}

// ApplicationDetails joins an application with its job summary and the
// counterparty's identity for list views.
type ApplicationDetails struct {
	Application
	JobTitle        string    `json:"jobTitle"`
	JobLocation     string    `json:"jobLocation"`
	JobType         JobType   `json:"jobType"`
	JobStatus       JobStatus `json:"jobStatus"`
	SeekerFirstName string    `json:"seekerFirstName,omitempty"`
	SeekerLastName  string    `json:"seekerLastName,omitempty"`
	SeekerEmail     string    `json:"seekerEmail,omitempty"`
	EmployerName    string    `json:"employerName,omitempty"`
}
