package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/kimthedrew/jobsabroad/internal/domain"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
        INSERT INTO users (id, email, hashed_password, user_type, first_name, last_name, country, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.HashedPassword,
		user.UserType,
		user.FirstName,
		user.LastName,
		user.Country,
		user.CreatedAt,
		user.UpdatedAt,
	)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrConflict
	}
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, `
        SELECT id, email, hashed_password, user_type, first_name, last_name, country, created_at, updated_at
        FROM users WHERE id = $1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `
        SELECT id, email, hashed_password, user_type, first_name, last_name, country, created_at, updated_at
        FROM users WHERE email = $1`, email)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	user := &domain.User{}

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.HashedPassword,
		&user.UserType,
		&user.FirstName,
		&user.LastName,
		&user.Country,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	return user, err
}

// uniqueViolation is the Postgres error code for unique constraint failures.
const uniqueViolation = pq.ErrorCode("23505")
