package interfaces

import (
	"context"

	"job_engagement/internal/domain/entities"
)

// INotificationDispatcher delivers notification intents. Delivery is best
// effort: callers log a failure and never roll back the transition.
type INotificationDispatcher interface {
	Dispatch(ctx context.Context, intents []entities.NotificationIntent) error
}
