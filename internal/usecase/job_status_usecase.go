package usecase

import (
	"context"
	"log"

	"job-board/internal/domain/job"
	"job-board/internal/repository"

	"github.com/google/uuid"
)

type JobStatusUsecase interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (job.Job, error)
}

type JobStatus struct {
	jobs     repository.JobRepository
	cache    ListingCache
	notifier ListingNotifier
	logger   *log.Logger
}

func NewJobStatusUsecase(jobs repository.JobRepository, cache ListingCache, notifier ListingNotifier, logger *log.Logger) *JobStatus {
	return &JobStatus{jobs: jobs, cache: cache, notifier: notifier, logger: logger}
}

// UpdateStatus moves a job to the requested lifecycle state. The status is
// validated before any store access; any state may move to any other state.
func (u *JobStatus) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (job.Job, error) {
	if !job.ValidStatus(status) {
		return job.Job{}, ErrInvalidStatus
	}

	updated, err := u.jobs.UpdateStatus(ctx, id, status)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Jobs] Status update failed | job_id=%s error=%v", id, err)
		}
		return job.Job{}, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.DeleteByPattern(ctx, ListingCachePattern)
	}
	if u.notifier != nil {
		u.notifier.JobsUpdated("status_changed")
	}

	return updated, nil
}
