package usecase

import (
	"strings"
	"testing"
)

func TestListingCacheKey_NormalizesTextFilters(t *testing.T) {
	a := listingCacheKey(resolveListFilter(JobListParams{Title: "  Full  Stack ", Location: "Bangalore"}))
	b := listingCacheKey(resolveListFilter(JobListParams{Title: "full stack", Location: "bangalore"}))
	if a != b {
		t.Fatalf("expected equivalent filters to share a key: %s vs %s", a, b)
	}
}

func TestListingCacheKey_DistinctFilters(t *testing.T) {
	a := listingCacheKey(resolveListFilter(JobListParams{Title: "backend"}))
	b := listingCacheKey(resolveListFilter(JobListParams{Title: "frontend"}))
	if a == b {
		t.Fatalf("different filters must not collide")
	}
}

func TestListingCacheKey_Prefix(t *testing.T) {
	key := listingCacheKey(resolveListFilter(JobListParams{}))
	if !strings.HasPrefix(key, "jobs:list:") {
		t.Fatalf("unexpected key %q", key)
	}
}

func TestListingCacheKey_DroppedSalaryMatchesAbsent(t *testing.T) {
	a := listingCacheKey(resolveListFilter(JobListParams{MaxSalary: "abc"}))
	b := listingCacheKey(resolveListFilter(JobListParams{}))
	if a != b {
		t.Fatalf("an unparsable salary bound must cache like an absent one")
	}
}
