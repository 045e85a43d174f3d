package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/kimthedrew/jobsabroad/internal/domain"
)

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) domain.ProfileRepository {
	return &profileRepository{db: db}
}

const jobSeekerProfileColumns = `
    user_id, phone, location, bio, profile_photo, desired_job_title, skills,
    experience, education, portfolio, resume, linked_in, github, website,
    availability, desired_salary, currency, created_at, updated_at`

func (r *profileRepository) UpsertJobSeeker(ctx context.Context, profile *domain.JobSeekerProfile) (*domain.JobSeekerProfile, error) {
	experience, err := json.Marshal(profile.Experience)
	if err != nil {
		return nil, fmt.Errorf("marshal experience: %w", err)
	}
	education, err := json.Marshal(profile.Education)
	if err != nil {
		return nil, fmt.Errorf("marshal education: %w", err)
	}
	portfolio, err := json.Marshal(profile.Portfolio)
	if err != nil {
		return nil, fmt.Errorf("marshal portfolio: %w", err)
	}

	query := `
        INSERT INTO jobseeker_profiles (` + jobSeekerProfileColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $18)
        ON CONFLICT (user_id) DO UPDATE SET
            phone = EXCLUDED.phone,
            location = EXCLUDED.location,
            bio = EXCLUDED.bio,
            profile_photo = EXCLUDED.profile_photo,
            desired_job_title = EXCLUDED.desired_job_title,
            skills = EXCLUDED.skills,
            experience = EXCLUDED.experience,
            education = EXCLUDED.education,
            portfolio = EXCLUDED.portfolio,
            resume = EXCLUDED.resume,
            linked_in = EXCLUDED.linked_in,
            github = EXCLUDED.github,
            website = EXCLUDED.website,
            availability = EXCLUDED.availability,
            desired_salary = EXCLUDED.desired_salary,
            currency = EXCLUDED.currency,
            updated_at = EXCLUDED.updated_at
        RETURNING ` + jobSeekerProfileColumns

	now := time.Now()
	row := r.db.QueryRowContext(ctx, query,
		profile.UserID,
		profile.Phone,
		profile.Location,
		profile.Bio,
		profile.ProfilePhoto,
		profile.DesiredJobTitle,
		pq.Array(profile.Skills),
		experience,
		education,
		portfolio,
		profile.Resume,
		profile.LinkedIn,
		profile.GitHub,
		profile.Website,
		profile.Availability,
		profile.DesiredSalary,
		profile.Currency,
		now,
	)

	saved, err := scanJobSeekerProfile(row)
	if err != nil {
		log.Error().Err(err).Str("user_id", profile.UserID.String()).Msg("failed to upsert jobseeker profile")
		return nil, err
	}
	return saved, nil
}

func (r *profileRepository) GetJobSeeker(ctx context.Context, userID uuid.UUID) (*domain.JobSeekerProfile, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT `+jobSeekerProfileColumns+`
        FROM jobseeker_profiles WHERE user_id = $1`, userID)

	profile, err := scanJobSeekerProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return profile, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJobSeekerProfile(row rowScanner) (*domain.JobSeekerProfile, error) {
	profile := &domain.JobSeekerProfile{}
	var experience, education, portfolio []byte

	err := row.Scan(
		&profile.UserID,
		&profile.Phone,
		&profile.Location,
		&profile.Bio,
		&profile.ProfilePhoto,
		&profile.DesiredJobTitle,
		pq.Array(&profile.Skills),
		&experience,
		&education,
		&portfolio,
		&profile.Resume,
		&profile.LinkedIn,
		&profile.GitHub,
		&profile.Website,
		&profile.Availability,
		&profile.DesiredSalary,
		&profile.Currency,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(experience, &profile.Experience); err != nil {
		return nil, fmt.Errorf("unmarshal experience: %w", err)
	}
	if err := json.Unmarshal(education, &profile.Education); err != nil {
		return nil, fmt.Errorf("unmarshal education: %w", err)
	}
	if err := json.Unmarshal(portfolio, &profile.Portfolio); err != nil {
		return nil, fmt.Errorf("unmarshal portfolio: %w", err)
	}

	return profile, nil
}

const employerProfileColumns = `
    user_id, company_name, company_website, company_size, industry, location,
    description, logo, created_at, updated_at`

func (r *profileRepository) UpsertEmployer(ctx context.Context, profile *domain.EmployerProfile) (*domain.EmployerProfile, error) {
	query := `
        INSERT INTO employer_profiles (` + employerProfileColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
        ON CONFLICT (user_id) DO UPDATE SET
            company_name = EXCLUDED.company_name,
            company_website = EXCLUDED.company_website,
            company_size = EXCLUDED.company_size,
            industry = EXCLUDED.industry,
            location = EXCLUDED.location,
            description = EXCLUDED.description,
            logo = EXCLUDED.logo,
            updated_at = EXCLUDED.updated_at
        RETURNING ` + employerProfileColumns

	saved := &domain.EmployerProfile{}
	err := r.db.QueryRowContext(ctx, query,
		profile.UserID,
		profile.CompanyName,
		profile.CompanyWebsite,
		profile.CompanySize,
		profile.Industry,
		profile.Location,
		profile.Description,
		profile.Logo,
		time.Now(),
	).Scan(
		&saved.UserID,
		&saved.CompanyName,
		&saved.CompanyWebsite,
		&saved.CompanySize,
		&saved.Industry,
		&saved.Location,
		&saved.Description,
		&saved.Logo,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		log.Error().Err(err).Str("user_id", profile.UserID.String()).Msg("failed to upsert employer profile")
		return nil, err
	}
	return saved, nil
}

func (r *profileRepository) GetEmployer(ctx context.Context, userID uuid.UUID) (*domain.EmployerProfile, error) {
	profile := &domain.EmployerProfile{}
	err := r.db.QueryRowContext(ctx, `
        SELECT `+employerProfileColumns+`
        FROM employer_profiles WHERE user_id = $1`, userID).Scan(
		&profile.UserID,
		&profile.CompanyName,
		&profile.CompanyWebsite,
		&profile.CompanySize,
		&profile.Industry,
		&profile.Location,
		&profile.Description,
		&profile.Logo,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return profile, err
}

// GetEmployersByUserIDs fetches profiles for all given employers in one query.
// Used by the job listing engine to avoid a per-job lookup.
func (r *profileRepository) GetEmployersByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*domain.EmployerProfile, error) {
	result := make(map[uuid.UUID]*domain.EmployerProfile, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	ids := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		ids = append(ids, id.String())
	}

	rows, err := r.db.QueryContext(ctx, `
        SELECT `+employerProfileColumns+`
        FROM employer_profiles WHERE user_id = ANY($1::uuid[])`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("query employer profiles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		profile := &domain.EmployerProfile{}
		err := rows.Scan(
			&profile.UserID,
			&profile.CompanyName,
			&profile.CompanyWebsite,
			&profile.CompanySize,
			&profile.Industry,
			&profile.Location,
			&profile.Description,
			&profile.Logo,
			&profile.CreatedAt,
			&profile.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan employer profile: %w", err)
		}
		result[profile.UserID] = profile
	}

	return result, rows.Err()
}
