package company

import (
	"time"

	"github.com/google/uuid"
)

// DefaultName is used when a job submission omits the company name.
const DefaultName = "Unknown Company"

type Company struct {
	ID        uuid.UUID
	Name      string
	LogoURL   string
	CreatedAt time.Time
}
