package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobEvent is an audit record of one accepted transition.
//
// Storage model (DynamoDB):
//   - PK: job_id, SK: id
//
// Dispute reasons are overwritten on the job itself; this log is where the
// history of every reason survives.
type JobEvent struct {
	ID         string              `json:"id"`
	JobID      string              `json:"job_id"`
	Operation  string              `json:"operation"`
	FromStatus JobStatus           `json:"from_status"`
	ToStatus   JobStatus           `json:"to_status"`
	Actor      Actor               `json:"actor"`
	Reason     string              `json:"reason,omitempty"`
	Amount     decimal.NullDecimal `json:"amount"`
	OccurredAt time.Time           `json:"occurred_at"`
}
