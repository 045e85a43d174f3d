package dto

type ApplicationSubmitRequest struct {
	JobID       string `json:"jobId" validate:"required"`
	CoverLetter string `json:"coverLetter" validate:"required"`
	Resume      string `json:"resume,omitempty"`
}

type ApplicationUpdateRequest struct {
	Status string  `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}
