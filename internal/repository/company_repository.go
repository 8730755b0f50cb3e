package repository

import (
	"context"
	"errors"

	"job-board/internal/database"
	"job-board/internal/domain/company"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

var (
	ErrCompanyNotFound  = errors.New("company not found")
	ErrCompanyNameTaken = errors.New("company name already exists")
)

type CompanyRepository interface {
	FindByName(ctx context.Context, q database.Executor, name string) (company.Company, error)
	Insert(ctx context.Context, q database.Executor, name, logoURL string) (company.Company, error)
}

type PostgresCompanyRepository struct{}

func NewPostgresCompanyRepository() *PostgresCompanyRepository {
	return &PostgresCompanyRepository{}
}

func (r *PostgresCompanyRepository) FindByName(ctx context.Context, q database.Executor, name string) (company.Company, error) {
	row := q.QueryRow(ctx,
		`SELECT id, name, COALESCE(logo_url, ''), created_at
		 FROM companies
		 WHERE name = $1`,
		name,
	)

	var c company.Company
	if err := row.Scan(&c.ID, &c.Name, &c.LogoURL, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, ErrCompanyNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}

// Insert creates the company through the unique-name upsert. When a concurrent
// creation for the same name wins the race, DO NOTHING swallows the insert and
// ErrCompanyNameTaken is returned so the caller can re-read the winner.
func (r *PostgresCompanyRepository) Insert(ctx context.Context, q database.Executor, name, logoURL string) (company.Company, error) {
	row := q.QueryRow(ctx,
		`INSERT INTO companies (name, logo_url)
		 VALUES ($1, NULLIF($2, ''))
		 ON CONFLICT (name) DO NOTHING
		 RETURNING id, name, COALESCE(logo_url, ''), created_at`,
		name, logoURL,
	)

	var c company.Company
	if err := row.Scan(&c.ID, &c.Name, &c.LogoURL, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, ErrCompanyNameTaken
		}
		return company.Company{}, translatePgError(err)
	}
	return c, nil
}

func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrCompanyNameTaken
	}
	return err
}
