package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

const listingCachePrefix = "jobs:list:"

// ListingCachePattern matches every cached listing result; writes invalidate
// with it.
const ListingCachePattern = listingCachePrefix + "*"

type listingCacheKeyInput struct {
	Title     string   `json:"title"`
	WorkMode  string   `json:"work_mode"`
	Location  string   `json:"location"`
	JobType   string   `json:"job_type"`
	MinSalary *float64 `json:"min_salary"`
	MaxSalary *float64 `json:"max_salary"`
}

func normalizeCacheValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

func listingCacheKey(f resolvedListFilter) string {
	in := listingCacheKeyInput{
		Title:     normalizeCacheValue(f.Title),
		WorkMode:  f.WorkMode,
		Location:  normalizeCacheValue(f.Location),
		JobType:   f.JobType,
		MinSalary: f.MinSalary,
		MaxSalary: f.MaxSalary,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return listingCachePrefix + hex.EncodeToString(sum[:])
}
