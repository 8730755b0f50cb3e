package handler

import (
	"errors"
	"time"

	"job-board/internal/delivery/http/dto"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobsHandler struct {
	list   usecase.JobListUsecase
	create usecase.JobCreateUsecase
	status usecase.JobStatusUsecase
}

func NewJobsHandler(list usecase.JobListUsecase, create usecase.JobCreateUsecase, status usecase.JobStatusUsecase) *JobsHandler {
	return &JobsHandler{list: list, create: create, status: status}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.HandleListJobs)
	r.Post("/jobs", h.HandleCreateJob)
	r.Patch("/jobs/:jobId", h.HandleUpdateJobStatus)
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	items, err := h.list.ListJobs(c.Context(), usecase.JobListParams{
		Title:     c.Query("title"),
		WorkMode:  c.Query("workMode"),
		Location:  c.Query("location"),
		JobType:   c.Query("jobType"),
		MinSalary: c.Query("minSalary"),
		MaxSalary: c.Query("maxSalary"),
	})
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to fetch jobs", err)
	}

	out := make([]dto.JobResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewJobResponse(it, true))
	}

	return response.JSON(c, fiber.StatusOK, dto.ListJobsResponse{Jobs: out})
}

func (h *JobsHandler) HandleCreateJob(c fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	deadline, err := parseDeadline(req.ApplicationDeadline)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application deadline", err)
	}

	created, comp, err := h.create.CreateJob(c.Context(), usecase.JobCreateParams{
		CompanyName:         req.CompanyName,
		CompanyLogoURL:      req.CompanyLogoURL,
		Title:               req.Title,
		Location:            req.Location,
		Description:         req.Description,
		MinExperience:       req.MinExperience,
		MaxExperience:       req.MaxExperience,
		MinSalary:           req.MinSalary,
		MaxSalary:           req.MaxSalary,
		JobType:             req.JobType,
		WorkMode:            req.WorkMode,
		Status:              req.Status,
		ApplicationDeadline: deadline,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCompanyNameExists):
			return middleware.NewAppError(fiber.StatusBadRequest, "Company name already exists", err)
		case errors.Is(err, usecase.ErrInvalidStatus):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to create job and company", err)
		}
	}

	return response.JSON(c, fiber.StatusCreated, dto.CreateJobResponse{
		Job:     dto.NewJobResponse(created, true),
		Company: dto.NewCompanyResponse(comp),
	})
}

func (h *JobsHandler) HandleUpdateJobStatus(c fiber.Ctx) error {
	var req dto.UpdateJobStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	// A malformed id can only miss; it surfaces exactly like any other store
	// failure on this path.
	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to update job status", err)
	}

	updated, err := h.status.UpdateStatus(c.Context(), jobID, req.Status)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidStatus) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to update job status", err)
	}

	return response.JSON(c, fiber.StatusOK, dto.UpdateJobStatusResponse{Job: dto.NewJobResponse(updated, false)})
}

func parseDeadline(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
