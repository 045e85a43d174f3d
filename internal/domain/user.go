package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type UserType string

const (
	UserTypeJobSeeker UserType = "jobseeker"
	UserTypeEmployer  UserType = "employer"
)

// ParseUserType converts a raw string to a UserType, returning an error for
// unknown values.
func ParseUserType(s string) (UserType, error) {
	ut := UserType(s)
	switch ut {
	case UserTypeJobSeeker, UserTypeEmployer:
		return ut, nil
	}
	return "", NewValidationError("userType", "must be 'jobseeker' or 'employer'", ErrInvalidField)
}

type User struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Email          string    `json:"email" db:"email"`
	HashedPassword string    `json:"-" db:"hashed_password"`
	UserType       UserType  `json:"userType" db:"user_type"`
	FirstName      string    `json:"firstName" db:"first_name"`
	LastName       string    `json:"lastName" db:"last_name"`
	Country        string    `json:"country" db:"country"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

func (u *User) IsEmployer() bool  { return u.UserType == UserTypeEmployer }
func (u *User) IsJobSeeker() bool { return u.UserType == UserTypeJobSeeker }

// SeekerCountry is the only country job-seeker accounts may register from.
// Checked once at registration, never re-validated afterwards.
const SeekerCountry = "kenya"

// IsAllowedSeekerCountry reports whether a job seeker may register with the
// given country. The comparison is case-insensitive.
func IsAllowedSeekerCountry(country string) bool {
	return strings.EqualFold(strings.TrimSpace(country), SeekerCountry)
}
