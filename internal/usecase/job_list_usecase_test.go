package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"job-board/internal/database"
	"job-board/internal/domain/job"
	"job-board/internal/repository"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	items      []job.Job
	err        error
	lastFilter repository.JobListFilter
	listCalls  int
}

func (m *mockJobRepo) ListPublished(_ context.Context, f repository.JobListFilter) ([]job.Job, error) {
	m.listCalls++
	m.lastFilter = f
	return m.items, m.err
}

func (m *mockJobRepo) Insert(context.Context, database.Executor, repository.JobInsert) (job.Job, error) {
	return job.Job{}, nil
}

func (m *mockJobRepo) UpdateStatus(context.Context, uuid.UUID, string) (job.Job, error) {
	return job.Job{}, nil
}

func TestJobListUsecase_ListJobs_Success(t *testing.T) {
	repo := &mockJobRepo{items: []job.Job{{
		ID:          uuid.New(),
		Title:       "Full Stack Developer",
		Location:    "Bangalore",
		Status:      job.StatusPublished,
		CompanyName: "Amazon",
		PostedAt:    time.Now().UTC(),
	}}}
	uc := NewJobListUsecase(repo, nil, nil)

	items, err := uc.ListJobs(context.Background(), JobListParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].CompanyName != "Amazon" {
		t.Fatalf("unexpected company name %q", items[0].CompanyName)
	}
}

func TestJobListUsecase_ListJobs_NormalizesJobType(t *testing.T) {
	repo := &mockJobRepo{}
	uc := NewJobListUsecase(repo, nil, nil)

	if _, err := uc.ListJobs(context.Background(), JobListParams{JobType: "full time"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastFilter.JobType != "FULL_TIME" {
		t.Fatalf("expected normalized job type FULL_TIME, got %q", repo.lastFilter.JobType)
	}
}

func TestJobListUsecase_ListJobs_WorkModeVerbatim(t *testing.T) {
	repo := &mockJobRepo{}
	uc := NewJobListUsecase(repo, nil, nil)

	if _, err := uc.ListJobs(context.Background(), JobListParams{WorkMode: "remote"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastFilter.WorkMode != "remote" {
		t.Fatalf("expected work mode passed through as supplied, got %q", repo.lastFilter.WorkMode)
	}
}

func TestJobListUsecase_ListJobs_UnparsableSalaryDropped(t *testing.T) {
	repo := &mockJobRepo{}
	uc := NewJobListUsecase(repo, nil, nil)

	if _, err := uc.ListJobs(context.Background(), JobListParams{MinSalary: "800000", MaxSalary: "abc"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastFilter.MinSalary == nil || *repo.lastFilter.MinSalary != 800000 {
		t.Fatalf("expected min salary 800000, got %v", repo.lastFilter.MinSalary)
	}
	if repo.lastFilter.MaxSalary != nil {
		t.Fatalf("expected unparsable max salary to be dropped, got %v", *repo.lastFilter.MaxSalary)
	}
}

func TestJobListUsecase_ListJobs_StoreFault(t *testing.T) {
	uc := NewJobListUsecase(&mockJobRepo{err: errors.New("boom")}, nil, nil)

	if _, err := uc.ListJobs(context.Background(), JobListParams{}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

type mockListingCache struct {
	store map[string][]byte
	sets  int
	gets  int
}

func newMockListingCache() *mockListingCache {
	return &mockListingCache{store: map[string][]byte{}}
}

func (m *mockListingCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.gets++
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockListingCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.sets++
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = b
	return nil
}

func (m *mockListingCache) DeleteByPattern(context.Context, string) error {
	m.store = map[string][]byte{}
	return nil
}

func TestJobListUsecase_ListJobs_CacheRoundTrip(t *testing.T) {
	repo := &mockJobRepo{items: []job.Job{{ID: uuid.New(), Title: "Backend Developer", Status: job.StatusPublished}}}
	c := newMockListingCache()
	uc := NewJobListUsecase(repo, c, nil)

	params := JobListParams{Title: "backend"}
	if _, err := uc.ListJobs(context.Background(), params); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.listCalls != 1 || c.sets != 1 {
		t.Fatalf("expected one store read and one cache set, got reads=%d sets=%d", repo.listCalls, c.sets)
	}

	items, err := uc.ListJobs(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected cache hit to skip the store, reads=%d", repo.listCalls)
	}
	if len(items) != 1 || items[0].Title != "Backend Developer" {
		t.Fatalf("unexpected cached items: %+v", items)
	}
}
