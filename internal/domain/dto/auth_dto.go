package dto

import (
	"github.com/google/uuid"

	"github.com/kimthedrew/jobsabroad/internal/domain"
)

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	UserType  string `json:"userType" validate:"required"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Country   string `json:"country" validate:"required,max=100"`

	// Role-specific extras accepted at registration.
	Location    string `json:"location,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the non-sensitive projection of an account. The password
// hash is never serialized anywhere.
type UserResponse struct {
	ID        uuid.UUID       `json:"id"`
	Email     string          `json:"email"`
	UserType  domain.UserType `json:"userType"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Country   string          `json:"country"`
}

func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		UserType:  u.UserType,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Country:   u.Country,
	}
}
