package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"job-board/internal/database"
	"job-board/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

// JobListFilter carries the optional listing constraints. Zero values impose
// no constraint; the published-only clause is always applied.
type JobListFilter struct {
	Title     string
	WorkMode  string
	Location  string
	JobType   string
	MinSalary *float64
	MaxSalary *float64
}

type JobInsert struct {
	CompanyID           uuid.UUID
	Title               string
	Location            string
	Description         string
	MinExperience       int
	MaxExperience       int
	MinSalary           float64
	MaxSalary           float64
	JobType             string
	WorkMode            string
	Status              string
	ApplicationDeadline time.Time
}

type JobRepository interface {
	ListPublished(ctx context.Context, f JobListFilter) ([]job.Job, error)
	Insert(ctx context.Context, q database.Executor, in JobInsert) (job.Job, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (job.Job, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `j.id, j.company_id, j.title, j.location, j.description,
	j.min_experience, j.max_experience, j.min_salary, j.max_salary,
	j.job_type, j.work_mode, j.status, j.application_deadline, j.posted_at`

func (r *PostgresJobRepository) ListPublished(ctx context.Context, f JobListFilter) ([]job.Job, error) {
	args := make([]any, 0, 6)
	conditions := make([]string, 0, 7)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.Title != "" {
		conditions = append(conditions, "j.title ILIKE '%' || "+arg(f.Title)+" || '%'")
	}
	if f.Location != "" {
		conditions = append(conditions, "j.location ILIKE '%' || "+arg(f.Location)+" || '%'")
	}
	if f.WorkMode != "" {
		conditions = append(conditions, "j.work_mode = "+arg(f.WorkMode))
	}
	if f.JobType != "" {
		conditions = append(conditions, "j.job_type = "+arg(f.JobType))
	}
	if f.MinSalary != nil {
		conditions = append(conditions, "j.min_salary >= "+arg(*f.MinSalary))
	}
	if f.MaxSalary != nil {
		conditions = append(conditions, "j.max_salary <= "+arg(*f.MaxSalary))
	}

	// Always last and never overridable: drafts and archived jobs are
	// invisible to the listing path.
	conditions = append(conditions, "j.status = 'PUBLISHED'")

	query := `SELECT ` + jobColumns + `, c.name, COALESCE(c.logo_url, '')
		 FROM jobs j
		 JOIN companies c ON c.id = j.company_id
		 WHERE ` + strings.Join(conditions, " AND ") + `
		 ORDER BY j.posted_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := scanJobWithCompany(rows, &j); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Insert(ctx context.Context, q database.Executor, in JobInsert) (job.Job, error) {
	row := q.QueryRow(ctx,
		`INSERT INTO jobs (company_id, title, location, description,
			min_experience, max_experience, min_salary, max_salary,
			job_type, work_mode, status, application_deadline)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING `+strings.ReplaceAll(jobColumns, "j.", ""),
		in.CompanyID, in.Title, in.Location, in.Description,
		in.MinExperience, in.MaxExperience, in.MinSalary, in.MaxSalary,
		in.JobType, in.WorkMode, in.Status, in.ApplicationDeadline,
	)

	var j job.Job
	if err := scanJob(row, &j); err != nil {
		return job.Job{}, translatePgError(err)
	}
	return j, nil
}

func (r *PostgresJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE jobs SET status = $1
		 WHERE id = $2
		 RETURNING `+strings.ReplaceAll(jobColumns, "j.", ""),
		status, id,
	)

	var j job.Job
	if err := scanJob(row, &j); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func scanJob(row database.Row, j *job.Job) error {
	return row.Scan(
		&j.ID, &j.CompanyID, &j.Title, &j.Location, &j.Description,
		&j.MinExperience, &j.MaxExperience, &j.MinSalary, &j.MaxSalary,
		&j.JobType, &j.WorkMode, &j.Status, &j.ApplicationDeadline, &j.PostedAt,
	)
}

func scanJobWithCompany(row database.Row, j *job.Job) error {
	return row.Scan(
		&j.ID, &j.CompanyID, &j.Title, &j.Location, &j.Description,
		&j.MinExperience, &j.MaxExperience, &j.MinSalary, &j.MaxSalary,
		&j.JobType, &j.WorkMode, &j.Status, &j.ApplicationDeadline, &j.PostedAt,
		&j.CompanyName, &j.CompanyLogoURL,
	)
}
