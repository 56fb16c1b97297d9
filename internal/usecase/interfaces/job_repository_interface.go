package interfaces

import (
	"context"
	"errors"

	"job_engagement/internal/domain/entities"
)

// ErrStatusConflict is returned by Save when the stored status no longer
// matches the one the caller read.
var ErrStatusConflict = errors.New("job status changed concurrently")

// IJobRepository abstracts DynamoDB persistence for Job.
//
// GetByID returns a zero Job (empty ID) when nothing is stored.
type IJobRepository interface {
	Create(ctx context.Context, job entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	// Save writes job only if the stored status is still expectedStatus.
	Save(ctx context.Context, job entities.Job, expectedStatus entities.JobStatus) (entities.Job, error)
}
