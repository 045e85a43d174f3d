package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/kimthedrew/jobsabroad/internal/domain"
)

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) domain.ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create inserts the application and bumps the job's application counter in
// one transaction. Uniqueness of (job_id, job_seeker_id) rests on the table's
// unique constraint, not a prior read, so two concurrent submits cannot both
// succeed: the loser gets ErrConflict.
func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now

	_, err = tx.ExecContext(ctx, `
        INSERT INTO applications (id, job_id, job_seeker_id, employer_id, cover_letter, resume, status, notes, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, '', $8, $8)`,
		app.ID,
		app.JobID,
		app.JobSeekerID,
		app.EmployerID,
		app.CoverLetter,
		app.Resume,
		app.Status,
		now,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrConflict
		}
		log.Error().Err(err).Msg("failed to insert application")
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE jobs SET applications = applications + 1 WHERE id = $1`, app.JobID); err != nil {
		log.Error().Err(err).Str("job_id", app.JobID.String()).Msg("failed to increment application counter")
		return err
	}

	return tx.Commit()
}

const applicationDetailColumns = `
    a.id, a.job_id, a.job_seeker_id, a.employer_id, a.cover_letter, a.resume,
    a.status, a.notes, a.created_at, a.updated_at,
    j.title, j.location, j.type, j.status,
    s.first_name, s.last_name, s.email,
    e.first_name || ' ' || e.last_name`

const applicationDetailFrom = `
    FROM applications a
    JOIN jobs j ON j.id = a.job_id
    JOIN users s ON s.id = a.job_seeker_id
    JOIN users e ON e.id = a.employer_id`

func (r *applicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ApplicationDetails, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+applicationDetailColumns+applicationDetailFrom+` WHERE a.id = $1`, id)

	details, err := scanApplicationDetails(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return details, err
}

func (r *applicationRepository) ListBySeeker(ctx context.Context, seekerID uuid.UUID) ([]*domain.ApplicationDetails, error) {
	return r.queryDetails(ctx,
		`SELECT `+applicationDetailColumns+applicationDetailFrom+
			` WHERE a.job_seeker_id = $1 ORDER BY a.created_at DESC`, seekerID)
}

func (r *applicationRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]*domain.ApplicationDetails, error) {
	return r.queryDetails(ctx,
		`SELECT `+applicationDetailColumns+applicationDetailFrom+
			` WHERE a.employer_id = $1 ORDER BY a.created_at DESC`, employerID)
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus, notes *string) (*domain.Application, error) {
	app := &domain.Application{}
	err := r.db.QueryRowContext(ctx, `
        UPDATE applications
        SET status = $2, notes = COALESCE($3, notes), updated_at = $4
        WHERE id = $1
        RETURNING id, job_id, job_seeker_id, employer_id, cover_letter, resume, status, notes, created_at, updated_at`,
		id, status, notes, time.Now(),
	).Scan(
		&app.ID,
		&app.JobID,
		&app.JobSeekerID,
		&app.EmployerID,
		&app.CoverLetter,
		&app.Resume,
		&app.Status,
		&app.Notes,
		&app.CreatedAt,
		&app.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return app, err
}

func (r *applicationRepository) queryDetails(ctx context.Context, query string, args ...interface{}) ([]*domain.ApplicationDetails, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}
	defer rows.Close()

	apps := make([]*domain.ApplicationDetails, 0)
	for rows.Next() {
		details, err := scanApplicationDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, details)
	}

	return apps, rows.Err()
}

func scanApplicationDetails(row rowScanner) (*domain.ApplicationDetails, error) {
	d := &domain.ApplicationDetails{}
	err := row.Scan(
		&d.ID,
		&d.JobID,
		&d.JobSeekerID,
		&d.EmployerID,
		&d.CoverLetter,
		&d.Resume,
		&d.Status,
		&d.Notes,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.JobTitle,
		&d.JobLocation,
		&d.JobType,
		&d.JobStatus,
		&d.SeekerFirstName,
		&d.SeekerLastName,
		&d.SeekerEmail,
		&d.EmployerName,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}
