package interfaces

import (
	"context"

	"job_engagement/internal/domain/entities"
)

// IJobEventRepository stores the audit trail of accepted transitions.
type IJobEventRepository interface {
	Append(ctx context.Context, e entities.JobEvent) error
	ListByJobID(ctx context.Context, jobID string) ([]entities.JobEvent, error)
}
