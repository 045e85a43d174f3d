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

type jobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) domain.JobRepository {
	return &jobRepository{db: db}
}

const jobColumns = `
    id, employer_id, title, description, requirements, responsibilities, type,
    location, remote, salary_min, salary_max, salary_currency, skills,
    experience, category, status, applications, views, created_at, updated_at`

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	query := `
        INSERT INTO jobs (` + jobColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, 0, 0, $17, $17)`

	var salaryMin, salaryMax *int64
	var salaryCurrency *string
	if job.Salary != nil {
		salaryMin, salaryMax = &job.Salary.Min, &job.Salary.Max
		salaryCurrency = &job.Salary.Currency
	}

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		job.ID,
		job.EmployerID,
		job.Title,
		job.Description,
		pq.Array(job.Requirements),
		pq.Array(job.Responsibilities),
		job.Type,
		job.Location,
		job.Remote,
		salaryMin,
		salaryMax,
		salaryCurrency,
		pq.Array(job.Skills),
		job.Experience,
		job.Category,
		job.Status,
		now,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create job")
	}
	return err
}

func (r *jobRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)

	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return job, err
}

// IncrementViews bumps the counter in the store so concurrent fetches never
// lose an increment.
func (r *jobRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `UPDATE jobs SET views = views + 1 WHERE id = $1`, id)
	return err
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	query := `
        UPDATE jobs
        SET title = $2, description = $3, requirements = $4, responsibilities = $5,
            type = $6, location = $7, remote = $8, salary_min = $9, salary_max = $10,
            salary_currency = $11, skills = $12, experience = $13, category = $14,
            status = $15, updated_at = $16
        WHERE id = $1`

	var salaryMin, salaryMax *int64
	var salaryCurrency *string
	if job.Salary != nil {
		salaryMin, salaryMax = &job.Salary.Min, &job.Salary.Max
		salaryCurrency = &job.Salary.Currency
	}

	result, err := r.db.ExecContext(ctx, query,
		job.ID,
		job.Title,
		job.Description,
		pq.Array(job.Requirements),
		pq.Array(job.Responsibilities),
		job.Type,
		job.Location,
		job.Remote,
		salaryMin,
		salaryMax,
		salaryCurrency,
		pq.Array(job.Skills),
		job.Experience,
		job.Category,
		job.Status,
		time.Now(),
	)
	if err != nil {
		log.Error().Err(err).Str("job_id", job.ID.String()).Msg("failed to update job")
		return err
	}
	return checkRowsAffected(result)
}

func (r *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		log.Error().Err(err).Str("job_id", id.String()).Msg("failed to delete job")
		return err
	}
	return checkRowsAffected(result)
}

// ListActive returns active postings, newest first, optionally filtered by
// category, type, remote flag and a full-text search over title+description.
func (r *jobRepository) ListActive(ctx context.Context, filter domain.JobFilter, limit int) ([]*domain.Job, error) {
	where := []string{"status = 'active'"}
	args := []interface{}{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		where = append(where, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.Remote {
		where = append(where, "remote = TRUE")
	}
	if filter.Search != "" {
		args = append(args, filter.Search)
		where = append(where, fmt.Sprintf(
			"to_tsvector('english', title || ' ' || description) @@ plainto_tsquery('english', $%d)", len(args)))
	}

	args = append(args, limit)
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE ` + joinAnd(where) +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args))

	return r.queryJobs(ctx, query, args...)
}

func (r *jobRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE employer_id = $1 ORDER BY created_at DESC`
	return r.queryJobs(ctx, query, employerID)
}

func (r *jobRepository) queryJobs(ctx context.Context, query string, args ...interface{}) ([]*domain.Job, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]*domain.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

func scanJob(row rowScanner) (*domain.Job, error) {
	job := &domain.Job{}
	var salaryMin, salaryMax *int64
	var salaryCurrency *string

	err := row.Scan(
		&job.ID,
		&job.EmployerID,
		&job.Title,
		&job.Description,
		pq.Array(&job.Requirements),
		pq.Array(&job.Responsibilities),
		&job.Type,
		&job.Location,
		&job.Remote,
		&salaryMin,
		&salaryMax,
		&salaryCurrency,
		pq.Array(&job.Skills),
		&job.Experience,
		&job.Category,
		&job.Status,
		&job.Applications,
		&job.Views,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if salaryMin != nil && salaryMax != nil {
		currency := "USD"
		if salaryCurrency != nil {
			currency = *salaryCurrency
		}
		job.Salary = &domain.Salary{Min: *salaryMin, Max: *salaryMax, Currency: currency}
	}

	return job, nil
}

func checkRowsAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func joinAnd(clauses []string) string {
	out := clauses[0]
	for _, c := range clauses[1:] {
		out += " AND " + c
	}
	return out
}
