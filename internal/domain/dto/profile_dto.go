package dto

import "github.com/kimthedrew/jobsabroad/internal/domain"

type JobSeekerProfileUpdateRequest struct {
	Phone           string                 `json:"phone,omitempty" validate:"omitempty,max=30"`
	Location        string                 `json:"location,omitempty" validate:"omitempty,max=200"`
	Bio             string                 `json:"bio,omitempty" validate:"omitempty,max=2000"`
	ProfilePhoto    string                 `json:"profilePhoto,omitempty"`
	DesiredJobTitle string                 `json:"desiredJobTitle,omitempty" validate:"omitempty,max=200"`
	Skills          []string               `json:"skills,omitempty"`
	Experience      []domain.Experience    `json:"experience,omitempty"`
	Education       []domain.Education     `json:"education,omitempty"`
	Portfolio       []domain.PortfolioItem `json:"portfolio,omitempty"`
	Resume          string                 `json:"resume,omitempty"`
	LinkedIn        string                 `json:"linkedIn,omitempty" validate:"omitempty,max=300"`
	GitHub          string                 `json:"github,omitempty" validate:"omitempty,max=300"`
	Website         string                 `json:"website,omitempty" validate:"omitempty,max=300"`
	Availability    string                 `json:"availability,omitempty"`
	DesiredSalary   *int64                 `json:"desiredSalary,omitempty" validate:"omitempty,min=0"`
	Currency        string                 `json:"currency,omitempty" validate:"omitempty,max=10"`
}

type EmployerProfileUpdateRequest struct {
	CompanyName    string `json:"companyName,omitempty" validate:"omitempty,max=200"`
	CompanyWebsite string `json:"companyWebsite,omitempty" validate:"omitempty,max=300"`
	CompanySize    string `json:"companySize,omitempty" validate:"omitempty,max=50"`
	Industry       string `json:"industry,omitempty" validate:"omitempty,max=100"`
	Location       string `json:"location,omitempty" validate:"omitempty,max=200"`
	Description    string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Logo           string `json:"logo,omitempty"`
}
