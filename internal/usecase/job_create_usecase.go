package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"job-board/internal/database"
	"job-board/internal/domain/company"
	"job-board/internal/domain/job"
	"job-board/internal/repository"
)

type JobCreateParams struct {
	CompanyName    string
	CompanyLogoURL string

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

type JobCreateUsecase interface {
	CreateJob(ctx context.Context, params JobCreateParams) (job.Job, company.Company, error)
}

type JobCreate struct {
	db        database.DB
	companies repository.CompanyRepository
	jobs      repository.JobRepository
	cache     ListingCache
	notifier  ListingNotifier
	logger    *log.Logger
}

func NewJobCreateUsecase(db database.DB, companies repository.CompanyRepository, jobs repository.JobRepository, cache ListingCache, notifier ListingNotifier, logger *log.Logger) *JobCreate {
	return &JobCreate{db: db, companies: companies, jobs: jobs, cache: cache, notifier: notifier, logger: logger}
}

// CreateJob resolves the company by name (creating it when absent) and inserts
// the job, both inside one transaction. The find-or-create goes through the
// unique-name upsert, so two concurrent submissions for a brand-new company
// serialize against exactly one surviving row.
func (u *JobCreate) CreateJob(ctx context.Context, params JobCreateParams) (job.Job, company.Company, error) {
	name := strings.TrimSpace(params.CompanyName)
	if name == "" {
		name = company.DefaultName
	}

	status := strings.TrimSpace(params.Status)
	if status == "" {
		status = string(job.StatusDraft)
	}
	if !job.ValidStatus(status) {
		return job.Job{}, company.Company{}, ErrInvalidStatus
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return job.Job{}, company.Company{}, u.internal("begin", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	comp, err := u.resolveCompany(ctx, tx, name, params.CompanyLogoURL)
	if err != nil {
		return job.Job{}, company.Company{}, err
	}

	created, err := u.jobs.Insert(ctx, tx, repository.JobInsert{
		CompanyID:           comp.ID,
		Title:               params.Title,
		Location:            params.Location,
		Description:         params.Description,
		MinExperience:       params.MinExperience,
		MaxExperience:       params.MaxExperience,
		MinSalary:           params.MinSalary,
		MaxSalary:           params.MaxSalary,
		JobType:             params.JobType,
		WorkMode:            params.WorkMode,
		Status:              status,
		ApplicationDeadline: params.ApplicationDeadline,
	})
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNameTaken) {
			return job.Job{}, company.Company{}, ErrCompanyNameExists
		}
		return job.Job{}, company.Company{}, u.internal("insert job", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return job.Job{}, company.Company{}, u.internal("commit", err)
	}

	created.CompanyName = comp.Name
	created.CompanyLogoURL = comp.LogoURL

	if u.cache != nil {
		_ = u.cache.DeleteByPattern(ctx, ListingCachePattern)
	}
	if u.notifier != nil {
		u.notifier.JobsUpdated("job_created")
	}

	return created, comp, nil
}

// resolveCompany is the find-or-create step. A lost race on the insert is
// resolved by re-reading the winner; its logo is kept as is.
func (u *JobCreate) resolveCompany(ctx context.Context, tx database.Tx, name, logoURL string) (company.Company, error) {
	comp, err := u.companies.FindByName(ctx, tx, name)
	if err == nil {
		return comp, nil
	}
	if !errors.Is(err, repository.ErrCompanyNotFound) {
		return company.Company{}, u.internal("find company", err)
	}

	comp, err = u.companies.Insert(ctx, tx, name, logoURL)
	if err == nil {
		return comp, nil
	}
	if !errors.Is(err, repository.ErrCompanyNameTaken) {
		return company.Company{}, u.internal("insert company", err)
	}

	comp, err = u.companies.FindByName(ctx, tx, name)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return company.Company{}, ErrCompanyNameExists
		}
		return company.Company{}, u.internal("reread company", err)
	}
	return comp, nil
}

func (u *JobCreate) internal(op string, err error) error {
	if u.logger != nil {
		u.logger.Printf("[Jobs] Create failed | op=%s error=%v", op, err)
	}
	return ErrInternal
}
