package dto

type CreateJobRequest struct {
	CompanyName    string `json:"companyName"`
	CompanyLogoURL string `json:"companyLogoUrl"`

	Title               string  `json:"title"`
	Location            string  `json:"location"`
	Description         string  `json:"description"`
	MinExperience       int     `json:"minExperience"`
	MaxExperience       int     `json:"maxExperience"`
	MinSalary           float64 `json:"minSalary"`
	MaxSalary           float64 `json:"maxSalary"`
	JobType             string  `json:"jobType"`
	WorkMode            string  `json:"workMode"`
	ApplicationDeadline string  `json:"applicationDeadline"`
	Status              string  `json:"status"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status"`
}
