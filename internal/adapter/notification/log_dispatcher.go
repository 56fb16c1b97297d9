// Package notification delivers notification intents produced by job
// transitions.
package notification

import (
	"context"
	"log"

	"job_engagement/internal/domain/entities"
	"job_engagement/internal/usecase/interfaces"
)

// LogDispatcher writes intents to the process log. It is the fallback
// when no broker is configured.
type LogDispatcher struct{}

var _ interfaces.INotificationDispatcher = LogDispatcher{}

func NewLogDispatcher() LogDispatcher {
	return LogDispatcher{}
}

func (LogDispatcher) Dispatch(_ context.Context, intents []entities.NotificationIntent) error {
	for _, in := range intents {
		log.Printf("[notification][log] category=%s job_id=%s recipient=%s:%s amount=%s reason=%q",
			in.Category, in.JobID, in.RecipientRole, in.RecipientID, amountString(in), in.Reason)
	}
	return nil
}

func amountString(in entities.NotificationIntent) string {
	if !in.Amount.Valid {
		return "-"
	}
	return in.Amount.Decimal.StringFixed(2)
}
