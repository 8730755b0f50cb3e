package dto

import (
	"time"

	"job-board/internal/domain/company"
	"job-board/internal/domain/job"

	"github.com/google/uuid"
)

type CompanyRef struct {
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
}

type JobResponse struct {
	ID                  uuid.UUID   `json:"id"`
	Title               string      `json:"title"`
	Location            string      `json:"location"`
	Description         string      `json:"description"`
	MinExperience       int         `json:"minExperience"`
	MaxExperience       int         `json:"maxExperience"`
	MinSalary           float64     `json:"minSalary"`
	MaxSalary           float64     `json:"maxSalary"`
	JobType             string      `json:"jobType"`
	WorkMode            string      `json:"workMode"`
	Status              string      `json:"status"`
	ApplicationDeadline string      `json:"applicationDeadline"`
	PostedAt            string      `json:"postedAt"`
	CompanyID           uuid.UUID   `json:"companyId"`
	Company             *CompanyRef `json:"company,omitempty"`
}

type CompanyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logoUrl"`
	CreatedAt string    `json:"createdAt"`
}

type ListJobsResponse struct {
	Jobs []JobResponse `json:"jobs"`
}

type CreateJobResponse struct {
	Job     JobResponse     `json:"job"`
	Company CompanyResponse `json:"company"`
}

type UpdateJobStatusResponse struct {
	Job JobResponse `json:"job"`
}

// NewJobResponse embeds the company reference only when the company name is
// known (the status-update path returns the bare job, like the listing's
// source contract).
func NewJobResponse(j job.Job, withCompany bool) JobResponse {
	res := JobResponse{
		ID:                  j.ID,
		Title:               j.Title,
		Location:            j.Location,
		Description:         j.Description,
		MinExperience:       j.MinExperience,
		MaxExperience:       j.MaxExperience,
		MinSalary:           j.MinSalary,
		MaxSalary:           j.MaxSalary,
		JobType:             string(j.JobType),
		WorkMode:            string(j.WorkMode),
		Status:              string(j.Status),
		ApplicationDeadline: j.ApplicationDeadline.UTC().Format(time.RFC3339),
		PostedAt:            j.PostedAt.UTC().Format(time.RFC3339),
		CompanyID:           j.CompanyID,
	}
	if withCompany {
		res.Company = &CompanyRef{Name: j.CompanyName, LogoURL: j.CompanyLogoURL}
	}
	return res
}

func NewCompanyResponse(c company.Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		LogoURL:   c.LogoURL,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
}
