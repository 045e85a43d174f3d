package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/kimthedrew/jobsabroad/internal/domain"
	"github.com/kimthedrew/jobsabroad/internal/domain/dto"
)

type ProfileService struct {
	profileRepo domain.ProfileRepository
	sanitizer   *domain.Sanitizer
}

func NewProfileService(profileRepo domain.ProfileRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		sanitizer:   domain.NewSanitizer(),
	}
}

// GetJobSeekerProfile returns the profile, or nil when the seeker never saved
// one. Absence is not an error for the owner's own view.
func (s *ProfileService) GetJobSeekerProfile(ctx context.Context, userID uuid.UUID) (*domain.JobSeekerProfile, error) {
	return s.profileRepo.GetJobSeeker(ctx, userID)
}

// UpdateJobSeekerProfile upserts the caller's profile. Incomplete experience,
// education and portfolio entries are silently dropped, never stored partial.
func (s *ProfileService) UpdateJobSeekerProfile(ctx context.Context, userID uuid.UUID, req *dto.JobSeekerProfileUpdateRequest) (*domain.JobSeekerProfile, error) {
	if err := domain.ValidateStruct(req); err != nil {
		return nil, err
	}

	if req.Availability != "" {
		if _, err := domain.ParseAvailability(req.Availability); err != nil {
			return nil, err
		}
	}

	location := req.Location
	if location == "" {
		location = "Kenya"
	}

	profile := &domain.JobSeekerProfile{
		UserID:          userID,
		Phone:           s.sanitizer.Clean(req.Phone),
		Location:        s.sanitizer.Clean(location),
		Bio:             s.sanitizer.Clean(req.Bio),
		ProfilePhoto:    req.ProfilePhoto,
		DesiredJobTitle: s.sanitizer.Clean(req.DesiredJobTitle),
		Skills:          s.sanitizer.CleanAll(req.Skills),
		Experience:      req.Experience,
		Education:       req.Education,
		Portfolio:       req.Portfolio,
		Resume:          req.Resume,
		LinkedIn:        req.LinkedIn,
		GitHub:          req.GitHub,
		Website:         req.Website,
		Availability:    domain.Availability(req.Availability),
		DesiredSalary:   req.DesiredSalary,
		Currency:        req.Currency,
	}
	profile.BeforeSave()

	return s.profileRepo.UpsertJobSeeker(ctx, profile)
}

func (s *ProfileService) GetEmployerProfile(ctx context.Context, userID uuid.UUID) (*domain.EmployerProfile, error) {
	return s.profileRepo.GetEmployer(ctx, userID)
}

func (s *ProfileService) UpdateEmployerProfile(ctx context.Context, userID uuid.UUID, req *dto.EmployerProfileUpdateRequest) (*domain.EmployerProfile, error) {
	if err := domain.ValidateStruct(req); err != nil {
		return nil, err
	}

	profile := &domain.EmployerProfile{
		UserID:         userID,
		CompanyName:    s.sanitizer.Clean(req.CompanyName),
		CompanyWebsite: req.CompanyWebsite,
		CompanySize:    req.CompanySize,
		Industry:       s.sanitizer.Clean(req.Industry),
		Location:       s.sanitizer.Clean(req.Location),
		Description:    s.sanitizer.Clean(req.Description),
		Logo:           req.Logo,
	}

	return s.profileRepo.UpsertEmployer(ctx, profile)
}
