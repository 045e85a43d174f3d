// Package database provides the Postgres connection and schema bootstrap.
package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

func NewPostgresConnection(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	return db, nil
}

// RunMigrations applies the schema idempotently at startup.
func RunMigrations(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id              UUID PRIMARY KEY,
    email           TEXT NOT NULL UNIQUE,
    hashed_password TEXT NOT NULL,
    user_type       TEXT NOT NULL CHECK (user_type IN ('jobseeker', 'employer')),
    first_name      TEXT NOT NULL,
    last_name       TEXT NOT NULL,
    country         TEXT NOT NULL,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS jobseeker_profiles (
    user_id           UUID PRIMARY KEY REFERENCES users(id),
    phone             TEXT NOT NULL DEFAULT '',
    location          TEXT NOT NULL,
    bio               TEXT NOT NULL DEFAULT '',
    profile_photo     TEXT NOT NULL DEFAULT '',
    desired_job_title TEXT NOT NULL DEFAULT '',
    skills            TEXT[] NOT NULL DEFAULT '{}',
    experience        JSONB NOT NULL DEFAULT '[]',
    education         JSONB NOT NULL DEFAULT '[]',
    portfolio         JSONB NOT NULL DEFAULT '[]',
    resume            TEXT NOT NULL DEFAULT '',
    linked_in         TEXT NOT NULL DEFAULT '',
    github            TEXT NOT NULL DEFAULT '',
    website           TEXT NOT NULL DEFAULT '',
    availability      TEXT NOT NULL DEFAULT 'immediate'
                      CHECK (availability IN ('immediate', '2weeks', '1month', 'not-looking')),
    desired_salary    BIGINT,
    currency          TEXT NOT NULL DEFAULT 'USD',
    created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS employer_profiles (
    user_id         UUID PRIMARY KEY REFERENCES users(id),
    company_name    TEXT NOT NULL DEFAULT '',
    company_website TEXT NOT NULL DEFAULT '',
    company_size    TEXT NOT NULL DEFAULT '',
    industry        TEXT NOT NULL DEFAULT '',
    location        TEXT NOT NULL,
    description     TEXT NOT NULL DEFAULT '',
    logo            TEXT NOT NULL DEFAULT '',
    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS jobs (
    id               UUID PRIMARY KEY,
    employer_id      UUID NOT NULL REFERENCES users(id),
    title            TEXT NOT NULL,
    description      TEXT NOT NULL,
    requirements     TEXT[] NOT NULL DEFAULT '{}',
    responsibilities TEXT[] NOT NULL DEFAULT '{}',
    type             TEXT NOT NULL CHECK (type IN ('full-time', 'part-time', 'contract', 'freelance')),
    location         TEXT NOT NULL,
    remote           BOOLEAN NOT NULL DEFAULT FALSE,
    salary_min       BIGINT,
    salary_max       BIGINT,
    salary_currency  TEXT,
    skills           TEXT[] NOT NULL DEFAULT '{}',
    experience       TEXT NOT NULL DEFAULT '',
    category         TEXT NOT NULL,
    status           TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'closed', 'draft')),
    applications     INTEGER NOT NULL DEFAULT 0,
    views            INTEGER NOT NULL DEFAULT 0,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_jobs_employer ON jobs(employer_id);
CREATE INDEX IF NOT EXISTS idx_jobs_status_created ON jobs(status, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_jobs_search
    ON jobs USING GIN (to_tsvector('english', title || ' ' || description));

CREATE TABLE IF NOT EXISTS applications (
    id            UUID PRIMARY KEY,
    job_id        UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
    job_seeker_id UUID NOT NULL REFERENCES users(id),
    employer_id   UUID NOT NULL REFERENCES users(id),
    cover_letter  TEXT NOT NULL,
    resume        TEXT NOT NULL DEFAULT '',
    status        TEXT NOT NULL DEFAULT 'pending'
                  CHECK (status IN ('pending', 'reviewed', 'shortlisted', 'rejected', 'accepted')),
    notes         TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (job_id, job_seeker_id)
);

CREATE INDEX IF NOT EXISTS idx_applications_seeker ON applications(job_seeker_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_applications_employer ON applications(employer_id, created_at DESC);
`
