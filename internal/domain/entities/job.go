package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobStatus is the lifecycle position of a job.
//
// The set is closed: every value a job may hold is declared below and
// Valid reports false for anything else (e.g. a corrupted row).
type JobStatus string

const (
	JobStatusOnsiteFeeRequested           JobStatus = "onsite_fee_requested"
	JobStatusOnsiteFeePendingConfirmation JobStatus = "onsite_fee_pending_confirmation"
	JobStatusPending                      JobStatus = "pending"
	JobStatusPriceSet                     JobStatus = "price_set"
	JobStatusDeclined                     JobStatus = "declined"
	JobStatusDeclinedByCustomer           JobStatus = "declined_by_customer"
	JobStatusDeclinedByCompany            JobStatus = "declined_by_company"
	JobStatusAwaitingPayment              JobStatus = "awaiting_payment"
	JobStatusDepositPaid                  JobStatus = "deposit_paid"
	JobStatusWorkOngoing                  JobStatus = "work_ongoing"
	JobStatusIntermediatePaid             JobStatus = "intermediate_paid"
	JobStatusWorkCompleted                JobStatus = "work_completed"
	JobStatusWorkDisputed                 JobStatus = "work_disputed"
	JobStatusWorkRectified                JobStatus = "work_rectified"
	JobStatusCompleted                    JobStatus = "completed"
)

var jobStatuses = map[JobStatus]struct{}{
	JobStatusOnsiteFeeRequested:           {},
	JobStatusOnsiteFeePendingConfirmation: {},
	JobStatusPending:                      {},
	JobStatusPriceSet:                     {},
	JobStatusDeclined:                     {},
	JobStatusDeclinedByCustomer:           {},
	JobStatusDeclinedByCompany:            {},
	JobStatusAwaitingPayment:              {},
	JobStatusDepositPaid:                  {},
	JobStatusWorkOngoing:                  {},
	JobStatusIntermediatePaid:             {},
	JobStatusWorkCompleted:                {},
	JobStatusWorkDisputed:                 {},
	JobStatusWorkRectified:                {},
	JobStatusCompleted:                    {},
}

func (s JobStatus) Valid() bool {
	_, ok := jobStatuses[s]
	return ok
}

// IsTerminal reports whether no further transition may leave s.
func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusDeclined, JobStatusDeclinedByCustomer, JobStatusDeclinedByCompany:
		return true
	}
	return false
}

// Job is one service engagement between a customer and a company.
//
// Storage model (DynamoDB):
//   - PK: id
//   - status is the optimistic-concurrency guard for every write
//
// Money:
//   - QuotedPrice is zero until the company submits a quote.
//   - OnsiteFeeAmount is paid out of band and never enters the ledger.
type Job struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	CompanyID   string `json:"company_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	RequiresOnsiteVisit bool                `json:"requires_onsite_visit"`
	OnsiteFeeAmount     decimal.NullDecimal `json:"onsite_fee_amount"`
	OnsiteFeePaid       bool                `json:"onsite_fee_paid"`
	OnsiteFeePaidAt     *time.Time          `json:"onsite_fee_paid_at,omitempty"`

	QuotedPrice   decimal.Decimal `json:"quoted_price"`
	Status        JobStatus       `json:"status"`
	DisputeReason string          `json:"dispute_reason,omitempty"`
	DeclineReason string          `json:"decline_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasCompany reports whether a company has been selected for the job.
func (j Job) HasCompany() bool {
	return j.CompanyID != ""
}
