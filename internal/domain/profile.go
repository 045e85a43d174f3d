package domain

import (
	"time"

	"github.com/google/uuid"
)

type Availability string

const (
	AvailabilityImmediate  Availability = "immediate"
	AvailabilityTwoWeeks   Availability = "2weeks"
	AvailabilityOneMonth   Availability = "1month"
	AvailabilityNotLooking Availability = "not-looking"
)

func ParseAvailability(s string) (Availability, error) {
	a := Availability(s)
	switch a {
	case AvailabilityImmediate, AvailabilityTwoWeeks, AvailabilityOneMonth, AvailabilityNotLooking:
		return a, nil
	}
	return "", NewValidationError("availability", "must be one of: immediate, 2weeks, 1month, not-looking", ErrInvalidField)
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate"` // YYYY-MM or YYYY-MM-DD
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// Complete reports whether the entry carries all required fields. Incomplete
// entries are dropped on save rather than persisted as partial records.
func (e Experience) Complete() bool {
	return e.Title != "" && e.Company != "" && e.StartDate != ""
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
}

func (e Education) Complete() bool {
	return e.Degree != "" && e.Institution != "" && e.StartDate != ""
}

type PortfolioItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	Image       string `json:"image,omitempty"`
}

func (p PortfolioItem) Complete() bool {
	return p.Title != "" && p.URL != ""
}

// PruneExperience returns only the entries with all required fields present.
func PruneExperience(entries []Experience) []Experience {
	kept := make([]Experience, 0, len(entries))
	for _, e := range entries {
		if e.Complete() {
			kept = append(kept, e)
		}
	}
	return kept
}

func PruneEducation(entries []Education) []Education {
	kept := make([]Education, 0, len(entries))
	for _, e := range entries {
		if e.Complete() {
			kept = append(kept, e)
		}
	}
	return kept
}

func PrunePortfolio(entries []PortfolioItem) []PortfolioItem {
	kept := make([]PortfolioItem, 0, len(entries))
	for _, p := range entries {
		if p.Complete() {
			kept = append(kept, p)
		}
	}
	return kept
}

type JobSeekerProfile struct {
	UserID          uuid.UUID       `json:"userId" db:"user_id"`
	Phone           string          `json:"phone,omitempty" db:"phone"`
	Location        string          `json:"location" db:"location"`
	Bio             string          `json:"bio,omitempty" db:"bio"`
	ProfilePhoto    string          `json:"profilePhoto,omitempty" db:"profile_photo"`
	DesiredJobTitle string          `json:"desiredJobTitle,omitempty" db:"desired_job_title"`
	Skills          []string        `json:"skills" db:"skills"`
	Experience      []Experience    `json:"experience"`
	Education       []Education     `json:"education"`
	Portfolio       []PortfolioItem `json:"portfolio"`
	Resume          string          `json:"resume,omitempty" db:"resume"`
	LinkedIn        string          `json:"linkedIn,omitempty" db:"linked_in"`
	GitHub          string          `json:"github,omitempty" db:"github"`
	Website         string          `json:"website,omitempty" db:"website"`
	Availability    Availability    `json:"availability" db:"availability"`
	DesiredSalary   *int64          `json:"desiredSalary,omitempty" db:"desired_salary"`
	Currency        string          `json:"currency" db:"currency"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt" db:"updated_at"`
}

// BeforeSave normalizes a profile prior to persistence: free-text fields are
// sanitized elsewhere; here incomplete list entries are pruned.
func (p *JobSeekerProfile) BeforeSave() {
	p.Experience = PruneExperience(p.Experience)
	p.Education = PruneEducation(p.Education)
	p.Portfolio = PrunePortfolio(p.Portfolio)
	if p.Availability == "" {
		p.Availability = AvailabilityImmediate
	}
	if p.Currency == "" {
		p.Currency = "USD"
	}
}

type EmployerProfile struct {
	UserID         uuid.UUID `json:"userId" db:"user_id"`
	CompanyName    string    `json:"companyName" db:"company_name"`
	CompanyWebsite string    `json:"companyWebsite,omitempty" db:"company_website"`
	CompanySize    string    `json:"companySize,omitempty" db:"company_size"`
	Industry       string    `json:"industry,omitempty" db:"industry"`
	Location       string    `json:"location" db:"location"`
	Description    string    `json:"description,omitempty" db:"description"`
	Logo           string    `json:"logo,omitempty" db:"logo"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
