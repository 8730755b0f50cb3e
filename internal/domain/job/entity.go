package job

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type JobType string

const (
	TypeFullTime   JobType = "FULL_TIME"
	TypePartTime   JobType = "PART_TIME"
	TypeContract   JobType = "CONTRACT"
	TypeInternship JobType = "INTERNSHIP"
)

type WorkMode string

const (
	ModeOnsite WorkMode = "ONSITE"
	ModeRemote WorkMode = "REMOTE"
	ModeHybrid WorkMode = "HYBRID"
)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusArchived  Status = "ARCHIVED"
)

type Job struct {
	ID                  uuid.UUID
	CompanyID           uuid.UUID
	Title               string
	Location            string
	Description         string
	MinExperience       int
	MaxExperience       int
	MinSalary           float64
	MaxSalary           float64
	JobType             JobType
	WorkMode            WorkMode
	Status              Status
	ApplicationDeadline time.Time
	PostedAt            time.Time

	// Denormalized from the owning company for listing responses.
	CompanyName    string
	CompanyLogoURL string
}

// NormalizeJobType maps lenient client input onto the enum: upper-cased, with
// spaces collapsed to underscores, so "full time" matches FULL_TIME.
func NormalizeJobType(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	return strings.ReplaceAll(s, " ", "_")
}

// ValidStatus reports whether raw is exactly one of the status enum values.
// No case folding: status input is strict.
func ValidStatus(raw string) bool {
	switch Status(raw) {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}
