package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/kimthedrew/jobsabroad/internal/domain"
)

type candidateRepository struct {
	db *sql.DB
}

func NewCandidateRepository(db *sql.DB) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

const candidateColumns = `
    u.id, u.first_name, u.last_name, u.email, u.country, u.created_at,
    p.phone, p.location, p.bio, p.profile_photo, p.desired_job_title,
    p.skills, p.experience, p.education, p.portfolio, p.availability,
    p.desired_salary, p.currency, p.linked_in, p.github, p.website,
    p.resume, p.updated_at`

const candidateFrom = ` FROM users u JOIN jobseeker_profiles p ON p.user_id = u.id`

// Search applies the filter pipeline, counts matches before pagination, then
// returns one page ordered by profile recency (account id as a stable
// tie-break).
func (r *candidateRepository) Search(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, int, error) {
	where, args := buildCandidateWhere(filter)
	whereSQL := " WHERE " + joinAnd(where)

	var total int
	countQuery := `SELECT COUNT(*)` + candidateFrom + whereSQL
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count candidates: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset())
	query := `SELECT ` + candidateColumns + candidateFrom + whereSQL +
		fmt.Sprintf(` ORDER BY p.updated_at DESC, u.id LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close()

	candidates := make([]domain.Candidate, 0, filter.Limit)
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan candidate: %w", err)
		}
		candidates = append(candidates, *candidate)
	}

	return candidates, total, rows.Err()
}

// GetByID fetches one job seeker joined with their profile. A seeker without
// a profile is reported as not found, same as in search.
func (r *candidateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+candidateColumns+candidateFrom+` WHERE u.id = $1 AND u.user_type = 'jobseeker'`, id)

	candidate, err := scanCandidate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return candidate, err
}

func scanCandidate(row rowScanner) (*domain.Candidate, error) {
	c := &domain.Candidate{}
	var experience, education, portfolio []byte

	err := row.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Country,
		&c.CreatedAt,
		&c.Profile.Phone,
		&c.Profile.Location,
		&c.Profile.Bio,
		&c.Profile.ProfilePhoto,
		&c.Profile.DesiredJobTitle,
		pq.Array(&c.Profile.Skills),
		&experience,
		&education,
		&portfolio,
		&c.Profile.Availability,
		&c.Profile.DesiredSalary,
		&c.Profile.Currency,
		&c.Profile.LinkedIn,
		&c.Profile.GitHub,
		&c.Profile.Website,
		&c.Profile.Resume,
		&c.Profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(experience, &c.Profile.Experience); err != nil {
		return nil, fmt.Errorf("unmarshal experience: %w", err)
	}
	if err := json.Unmarshal(education, &c.Profile.Education); err != nil {
		return nil, fmt.Errorf("unmarshal education: %w", err)
	}
	if err := json.Unmarshal(portfolio, &c.Profile.Portfolio); err != nil {
		return nil, fmt.Errorf("unmarshal portfolio: %w", err)
	}

	return c, nil
}
