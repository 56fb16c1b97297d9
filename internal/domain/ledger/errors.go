package ledger

import (
	"errors"
	"fmt"
)

// ErrInconsistent is matched by every InconsistencyError.
var ErrInconsistent = errors.New("ledger inconsistency")

// InconsistencyError reports a ledger that cannot be reconciled. Callers
// must route it to manual review instead of retrying.
type InconsistencyError struct {
	JobID         string
	TransactionID string
	Reason        string
}

func (e *InconsistencyError) Error() string {
	if e.TransactionID != "" {
		return fmt.Sprintf("ledger inconsistency job_id=%s transaction_id=%s: %s", e.JobID, e.TransactionID, e.Reason)
	}
	return fmt.Sprintf("ledger inconsistency job_id=%s: %s", e.JobID, e.Reason)
}

func (e *InconsistencyError) Is(target error) bool {
	return target == ErrInconsistent
}
