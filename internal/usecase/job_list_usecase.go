package usecase

import (
	"context"
	"log"
	"strconv"
	"strings"

	"job-board/internal/domain/job"
	"job-board/internal/repository"
)

// JobListParams are the raw query parameters. Every field is optional; an
// empty string means "no constraint".
type JobListParams struct {
	Title     string
	WorkMode  string
	Location  string
	JobType   string
	MinSalary string
	MaxSalary string
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) ([]job.Job, error)
}

type resolvedListFilter struct {
	Title     string
	WorkMode  string
	Location  string
	JobType   string
	MinSalary *float64
	MaxSalary *float64
}

type JobList struct {
	jobs   repository.JobRepository
	cache  ListingCache
	logger *log.Logger
}

func NewJobListUsecase(jobs repository.JobRepository, cache ListingCache, logger *log.Logger) *JobList {
	return &JobList{jobs: jobs, cache: cache, logger: logger}
}

func (u *JobList) ListJobs(ctx context.Context, params JobListParams) ([]job.Job, error) {
	f := resolveListFilter(params)

	cacheKey := ""
	if u.cache != nil {
		cacheKey = listingCacheKey(f)
		var cached []job.Job
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Jobs] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	rows, err := u.jobs.ListPublished(ctx, repository.JobListFilter{
		Title:     f.Title,
		WorkMode:  f.WorkMode,
		Location:  f.Location,
		JobType:   f.JobType,
		MinSalary: f.MinSalary,
		MaxSalary: f.MaxSalary,
	})
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Jobs] List failed | error=%v", err)
		}
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, rows, 0)
	}
	return rows, nil
}

// resolveListFilter turns raw strings into typed constraints. A salary bound
// that fails to parse is dropped rather than rejected; the job type is
// normalized so "full time" matches FULL_TIME, while the work mode is matched
// exactly as supplied.
func resolveListFilter(params JobListParams) resolvedListFilter {
	f := resolvedListFilter{
		Title:    strings.TrimSpace(params.Title),
		WorkMode: strings.TrimSpace(params.WorkMode),
		Location: strings.TrimSpace(params.Location),
	}

	if jt := strings.TrimSpace(params.JobType); jt != "" {
		f.JobType = job.NormalizeJobType(jt)
	}
	f.MinSalary = parseSalary(params.MinSalary)
	f.MaxSalary = parseSalary(params.MaxSalary)

	return f
}

func parseSalary(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
