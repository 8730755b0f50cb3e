package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"job-board/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
)

var jobRowColumns = []string{
	"id", "company_id", "title", "location", "description",
	"min_experience", "max_experience", "min_salary", "max_salary",
	"job_type", "work_mode", "status", "application_deadline", "posted_at",
}

func addJobRow(rows *pgxmock.Rows, id, companyID uuid.UUID, title string, posted time.Time, extra ...any) *pgxmock.Rows {
	vals := []any{
		id, companyID, title, "Bangalore", "desc",
		1, 3, float64(800000), float64(1200000),
		job.TypeFullTime, job.ModeOnsite, job.StatusPublished,
		posted.AddDate(0, 1, 0), posted,
	}
	vals = append(vals, extra...)
	return rows.AddRow(vals...)
}

func TestJobRepository_ListPublished_NoFilters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresJobRepository(mockDB{pool: mock})

	now := time.Now().UTC()
	rows := pgxmock.NewRows(append(jobRowColumns, "name", "logo_url"))
	addJobRow(rows, uuid.New(), uuid.New(), "Full Stack Developer", now, "Amazon", "https://img.example/amazon.png")

	mock.ExpectQuery(`j\.status = 'PUBLISHED'\s+ORDER BY j\.posted_at DESC`).
		WillReturnRows(rows)

	out, err := repo.ListPublished(context.Background(), JobListFilter{})
	if err != nil {
		t.Fatalf("ListPublished returned error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 job, got %d", len(out))
	}
	if out[0].CompanyName != "Amazon" {
		t.Fatalf("expected embedded company name, got %q", out[0].CompanyName)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestJobRepository_ListPublished_AllFilters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresJobRepository(mockDB{pool: mock})

	minSalary := float64(800000)
	maxSalary := float64(2000000)

	mock.ExpectQuery(`j\.title ILIKE '%' \|\| \$1 \|\| '%' AND j\.location ILIKE '%' \|\| \$2 \|\| '%' AND j\.work_mode = \$3 AND j\.job_type = \$4 AND j\.min_salary >= \$5 AND j\.max_salary <= \$6 AND j\.status = 'PUBLISHED'`).
		WithArgs("developer", "bangalore", "REMOTE", "FULL_TIME", minSalary, maxSalary).
		WillReturnRows(pgxmock.NewRows(append(jobRowColumns, "name", "logo_url")))

	out, err := repo.ListPublished(context.Background(), JobListFilter{
		Title:     "developer",
		Location:  "bangalore",
		WorkMode:  "REMOTE",
		JobType:   "FULL_TIME",
		MinSalary: &minSalary,
		MaxSalary: &maxSalary,
	})
	if err != nil {
		t.Fatalf("ListPublished returned error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %d", len(out))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestJobRepository_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	db := mockDB{pool: mock}
	repo := NewPostgresJobRepository(db)

	companyID := uuid.New()
	jobID := uuid.New()
	now := time.Now().UTC()
	deadline := now.AddDate(0, 1, 0)

	rows := pgxmock.NewRows(jobRowColumns).AddRow(
		jobID, companyID, "Backend Engineer", "Chennai", "desc",
		2, 5, float64(1800000), float64(3200000),
		job.TypeFullTime, job.ModeRemote, job.StatusDraft,
		deadline, now,
	)

	mock.ExpectQuery(`INSERT INTO jobs`).
		WithArgs(companyID, "Backend Engineer", "Chennai", "desc",
			2, 5, float64(1800000), float64(3200000),
			"FULL_TIME", "REMOTE", "DRAFT", deadline).
		WillReturnRows(rows)

	created, err := repo.Insert(context.Background(), db, JobInsert{
		CompanyID:           companyID,
		Title:               "Backend Engineer",
		Location:            "Chennai",
		Description:         "desc",
		MinExperience:       2,
		MaxExperience:       5,
		MinSalary:           1800000,
		MaxSalary:           3200000,
		JobType:             "FULL_TIME",
		WorkMode:            "REMOTE",
		Status:              "DRAFT",
		ApplicationDeadline: deadline,
	})
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if created.ID != jobID {
		t.Fatalf("unexpected job id")
	}
	if created.Status != job.StatusDraft {
		t.Fatalf("unexpected status %s", created.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestJobRepository_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresJobRepository(mockDB{pool: mock})

	jobID := uuid.New()
	now := time.Now().UTC()
	rows := pgxmock.NewRows(jobRowColumns).AddRow(
		jobID, uuid.New(), "Frontend Developer", "Hyderabad", "desc",
		2, 5, float64(1800000), float64(3000000),
		job.TypeFullTime, job.ModeOnsite, job.StatusArchived,
		now.AddDate(0, 1, 0), now,
	)

	mock.ExpectQuery(`UPDATE jobs SET status = \$1`).
		WithArgs("ARCHIVED", jobID).
		WillReturnRows(rows)

	updated, err := repo.UpdateStatus(context.Background(), jobID, "ARCHIVED")
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != job.StatusArchived {
		t.Fatalf("unexpected status %s", updated.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestJobRepository_UpdateStatus_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresJobRepository(mockDB{pool: mock})

	mock.ExpectQuery(`UPDATE jobs SET status = \$1`).
		WithArgs("PUBLISHED", pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.UpdateStatus(context.Background(), uuid.New(), "PUBLISHED")
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}
