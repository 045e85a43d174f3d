package dto

type SalaryInput struct {
	Min      *int64 `json:"min,omitempty"`
	Max      *int64 `json:"max,omitempty"`
	Currency string `json:"currency,omitempty"`
}

type JobCreateRequest struct {
	Title            string       `json:"title" validate:"required,max=200"`
	Description      string       `json:"description" validate:"required"`
	Requirements     []string     `json:"requirements,omitempty"`
	Responsibilities []string     `json:"responsibilities,omitempty"`
	Type             string       `json:"type" validate:"required"`
	Location         string       `json:"location" validate:"required,max=200"`
	Remote           bool         `json:"remote"`
	Salary           *SalaryInput `json:"salary,omitempty"`
	Skills           []string     `json:"skills,omitempty"`
	Experience       string       `json:"experience,omitempty"`
	Category         string       `json:"category" validate:"required,max=100"`
	Status           string       `json:"status,omitempty"`
}

// JobUpdateRequest uses pointers so absent fields leave the posting unchanged.
type JobUpdateRequest struct {
	Title            *string      `json:"title,omitempty"`
	Description      *string      `json:"description,omitempty"`
	Requirements     []string     `json:"requirements,omitempty"`
	Responsibilities []string     `json:"responsibilities,omitempty"`
	Type             *string      `json:"type,omitempty"`
	Location         *string      `json:"location,omitempty"`
	Remote           *bool        `json:"remote,omitempty"`
	Salary           *SalaryInput `json:"salary,omitempty"`
	Skills           []string     `json:"skills,omitempty"`
	Experience       *string      `json:"experience,omitempty"`
	Category         *string      `json:"category,omitempty"`
	Status           *string      `json:"status,omitempty"`
}
