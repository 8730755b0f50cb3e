package seeder

import (
	"context"
	"fmt"
	"time"

	"job-board/internal/database"
)

// ListingSeeder resets the board and loads the demo companies with their
// jobs. It is reset-then-load tooling, never part of the request path.
type ListingSeeder struct{}

func (ListingSeeder) Name() string { return "listings" }

func (ListingSeeder) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	if _, err := db.Exec(ctx, `DELETE FROM jobs`); err != nil {
		return err
	}
	if _, err := db.Exec(ctx, `DELETE FROM companies`); err != nil {
		return err
	}

	for _, comp := range demoCompanies {
		row := db.QueryRow(ctx,
			`INSERT INTO companies (name, logo_url) VALUES ($1, NULLIF($2, ''))
			 ON CONFLICT (name) DO UPDATE SET logo_url = EXCLUDED.logo_url
			 RETURNING id`,
			comp.Name, comp.LogoURL,
		)
		var companyID string
		if err := row.Scan(&companyID); err != nil {
			return fmt.Errorf("seed company %s: %w", comp.Name, err)
		}

		for _, j := range comp.Jobs {
			deadline, err := time.Parse("2006-01-02", j.ApplicationDeadline)
			if err != nil {
				return fmt.Errorf("seed job %s: %w", j.Title, err)
			}

			_, err = db.Exec(ctx,
				`INSERT INTO jobs (company_id, title, location, description,
					min_experience, max_experience, min_salary, max_salary,
					job_type, work_mode, status, application_deadline)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
				companyID, j.Title, j.Location, j.Description,
				j.MinExperience, j.MaxExperience, j.MinSalary, j.MaxSalary,
				j.JobType, j.WorkMode, j.Status, deadline,
			)
			if err != nil {
				return fmt.Errorf("seed job %s: %w", j.Title, err)
			}
		}
	}

	return nil
}
